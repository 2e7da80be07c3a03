package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedType = errors.New("document: unsupported file type")

var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// Extractor turns an uploaded resume into plain text.
type Extractor interface {
	Extract(fileName string, data []byte) (string, error)
}

type FileExtractor struct{}

func NewExtractor() *FileExtractor { return &FileExtractor{} }

// AllowedExtension reports whether fileName has a type the extractor can read.
func AllowedExtension(fileName string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

// ContentType returns the MIME type for a supported file name, or octet-stream.
func ContentType(fileName string) string {
	if ct, ok := allowedExtensions[strings.ToLower(filepath.Ext(fileName))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func (e *FileExtractor) Extract(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return string(data), nil
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(fileName))
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

var (
	xmlTag     = regexp.MustCompile(`<[^>]+>`)
	paragraphs = regexp.MustCompile(`</w:p>`)
	blankRuns  = regexp.MustCompile(`[ \t]+`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps paragraph breaks and drops all markup.
func stripDocxXML(content string) string {
	content = paragraphs.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = blankRuns.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
