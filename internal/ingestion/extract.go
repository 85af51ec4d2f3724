package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported document type.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var contentTypeFormats = map[string]Format{
	"text/plain":      FormatText,
	"text/markdown":   FormatText,
	"text/html":       FormatHTML,
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
}

var extensionFormats = map[string]Format{
	".txt":  FormatText,
	".md":   FormatText,
	".text": FormatText,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DetectFormat picks the document format from the content type, falling back
// to the file extension for generic or missing content types.
func DetectFormat(filename, contentType string) (Format, error) {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			if f, ok := contentTypeFormats[mediaType]; ok {
				return f, nil
			}
		}
	}
	if f, ok := extensionFormats[strings.ToLower(filepath.Ext(filename))]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Filename: filename, ContentType: contentType}
}

// ExtractText converts an uploaded document to plain text. Plain text is
// returned unaltered since the formatting checks read its spacing; text
// extracted from html, pdf or docx is cleaned.
func ExtractText(filename, contentType string, data []byte) (string, error) {
	format, err := DetectFormat(filename, contentType)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatText:
		if !utf8.Valid(data) {
			return "", &ExtractionError{Format: format, Message: "text is not valid UTF-8"}
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", &ExtractionError{Format: format, Message: "document contains no text"}
		}
		return string(data), nil
	case FormatHTML:
		text, err = HTMLToText(string(data))
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = extractDocxText(data)
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if text == "" {
		return "", &ExtractionError{Format: format, Message: "document contains no text"}
	}
	return text, nil
}

// IngestFromFile reads a document from disk, extracts its text and returns
// the text with its metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(path)
	format, err := DetectFormat(name, "")
	if err != nil {
		return "", nil, err
	}
	text, err := ExtractText(name, "", data)
	if err != nil {
		return "", nil, err
	}
	return text, NewMetadata(text, name, format), nil
}

// HTMLToText returns the visible text of an HTML document, keeping block
// elements on separate lines and list items as "- " bullets.
func HTMLToText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, footer").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, div, li, tr, section, article, h1, h2, h3, h4, h5, h6").AppendHtml("\n")

	return doc.Find("body").Text(), nil
}

func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("malformed pdf: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to read pdf", Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			return "", &ExtractionError{Format: FormatPDF, Message: "failed to read page text", Cause: pageErr}
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDocxText(data []byte) (string, error) {
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "not a docx archive", Cause: err}
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to parse docx", Cause: err}
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML to text with one line per paragraph.
func docxXMLToText(xml string) string {
	xml = docxParagraphEnd.ReplaceAllString(xml, "\n")
	xml = docxTab.ReplaceAllString(xml, "\t")
	xml = xmlTag.ReplaceAllString(xml, "")
	return html.UnescapeString(xml)
}
