package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadablePDF is returned when bytes cannot be parsed as a PDF
var ErrUnreadablePDF = errors.New("unreadable PDF file")

var whitespaceRun = regexp.MustCompile(`\s+`)

// DocumentExtractor extracts plain text from uploaded PDF documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractPDFText parses a PDF and returns the text of every page.
// Parse failures are reported as ErrUnreadablePDF.
func (e *DocumentExtractor) ExtractPDFText(content []byte) (text string, err error) {
	if !IsPDF(content) {
		return "", ErrUnreadablePDF
	}

	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return NormalizeText(sb.String()), nil
}

// NormalizeText collapses whitespace runs so stored text stays compact
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// IsPDF sniffs the content type of raw bytes
func IsPDF(content []byte) bool {
	return bytes.HasPrefix(content, []byte("%PDF")) ||
		http.DetectContentType(content) == "application/pdf"
}

// DecodeBase64 accepts standard base64 with or without a data URL prefix
func DecodeBase64(data string) ([]byte, error) {
	if i := strings.Index(data, ","); strings.HasPrefix(data, "data:") && i > 0 {
		data = data[i+1:]
	}
	data = strings.TrimSpace(data)

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return decoded, nil
}

// AttachmentFilename builds a download name with whitespace replaced by
// underscores and a .pdf suffix
func AttachmentFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "document"
	}
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = strings.ReplaceAll(name, `"`, "")
	return name + ".pdf"
}
