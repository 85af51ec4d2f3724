package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumesense/internal/ingestion"
)

var extractTextCmd = &cobra.Command{
	Use:   "extract-text",
	Short: "Extract plain text from a resume or job description document",
	Long:  "Reads a txt, md, html, pdf or docx file and writes its cleaned text. With --meta a JSON metadata file with the content hash is written as well.",
	RunE:  runExtractText,
}

var (
	extractInput  string
	extractOutput string
	extractMeta   string
)

func init() {
	extractTextCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to input document (required)")
	extractTextCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to write the text (defaults to stdout)")
	extractTextCmd.Flags().StringVar(&extractMeta, "meta", "", "Path to write metadata JSON (optional)")

	if err := extractTextCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractTextCmd)
}

func runExtractText(cmd *cobra.Command, _ []string) error {
	text, meta, err := ingestion.IngestFromFile(extractInput)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if extractOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	} else if err := os.WriteFile(extractOutput, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	if extractMeta != "" {
		data, err := meta.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		if err := os.WriteFile(extractMeta, data, 0644); err != nil {
			return fmt.Errorf("failed to write metadata file: %w", err)
		}
	}
	return nil
}
