package ingestion

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
)

// Metadata describes an ingested document.
type Metadata struct {
	Filename   string `json:"filename,omitempty"`
	Format     Format `json:"format"`
	Timestamp  string `json:"timestamp"` // RFC3339 format
	Hash       string `json:"hash"`      // BLAKE2b-256 hex digest of the extracted text
	Characters int    `json:"characters"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, filename string, format Format) *Metadata {
	return &Metadata{
		Filename:   filename,
		Format:     format,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       ContentHash(content),
		Characters: utf8.RuneCountInString(content),
	}
}

// ContentHash fingerprints text for de-duplication. Resumes and job
// descriptions with identical text share a hash.
func ContentHash(content string) string {
	hash := blake2b.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
