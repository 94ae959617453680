package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/micetf/classifieur-numerique/internal/common"
)

// DefaultMaxSize is the largest file Extract accepts.
const DefaultMaxSize = 10 * 1024 * 1024

// Kind is the detected document format.
type Kind string

// Supported kinds.
const (
	KindText Kind = "text"
	KindHTML Kind = "html"
	KindPDF  Kind = "pdf"
)

var extensions = map[string]Kind{
	".txt":      KindText,
	".md":       KindText,
	".markdown": KindText,
	".csv":      KindText,
	".html":     KindHTML,
	".htm":      KindHTML,
	".pdf":      KindPDF,
}

// Document is a file reduced to its text.
type Document struct {
	Name    string
	Path    string
	Kind    Kind
	Content string
	Size    int64
	Pages   int
}

// Text returns the content to classify. A document without extractable text
// is classified by its file name.
func (d Document) Text() string {
	if strings.TrimSpace(d.Content) != "" {
		return d.Content
	}
	return d.Name
}

// Supported reports whether path has an extension Extract can read.
func Supported(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extractor reads documents from disk.
type Extractor struct {
	maxSize int64
}

// NewExtractor creates an extractor. A non-positive maxSize selects
// DefaultMaxSize.
func NewExtractor(maxSize int64) *Extractor {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Extractor{maxSize: maxSize}
}

// Extract reads the file at path and returns its text.
func (e *Extractor) Extract(path string) (Document, error) {
	kind, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", common.ErrUnsupportedDocument, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to stat document: %w", err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%w: %s is a directory", common.ErrUnsupportedDocument, path)
	}
	if info.Size() > e.maxSize {
		return Document{}, fmt.Errorf("%w: %d bytes (max %d)", common.ErrDocumentTooLarge, info.Size(), e.maxSize)
	}

	doc := Document{
		Name: filepath.Base(path),
		Path: path,
		Kind: kind,
		Size: info.Size(),
	}

	switch kind {
	case KindPDF:
		content, pages, err := readPDF(path)
		if err != nil {
			return Document{}, err
		}
		doc.Content = content
		doc.Pages = pages
	case KindHTML:
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
		if err != nil {
			return Document{}, fmt.Errorf("failed to read document: %w", err)
		}
		doc.Content = Sanitize(string(data))
	default:
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
		if err != nil {
			return Document{}, fmt.Errorf("failed to read document: %w", err)
		}
		doc.Content = string(data)
	}

	return doc, nil
}

func readPDF(path string) (string, int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var buf bytes.Buffer
	pages := reader.NumPage()
	for pageNum := 1; pageNum <= pages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}

	return strings.TrimSpace(buf.String()), pages, nil
}
