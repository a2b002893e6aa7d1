package extract

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	multiSpace    = regexp.MustCompile(` +`)
	multiNewlines = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Extractor extracts plain text from uploaded document files.
type Extractor struct{}

// New creates a text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path, extracts its text according to fileType
// (the lowercase extension without the dot), and normalizes the result.
func (e *Extractor) Extract(path, fileType string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(fileType) {
	case "pdf":
		text, err = extractPDF(path)
	case "docx":
		text, err = extractDOCX(path)
	case "xlsx":
		text, err = extractXLSX(path)
	case "txt":
		text, err = extractTXT(path)
	case "md":
		text, err = extractMarkdown(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
	if err != nil {
		return "", err
	}

	return Normalize(text), nil
}

// Normalize collapses runs of spaces to one space, runs of three or more
// newlines to a blank line, and trims surrounding whitespace.
func Normalize(text string) string {
	text = multiSpace.ReplaceAllString(text, " ")
	text = multiNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
