package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	pdf "github.com/ledongthuc/pdf"
)

// ErrDocumentLoad signals that the uploaded bytes could not be opened as a
// document at all. It is the only failure the import pipeline can produce;
// everything after loading degrades to empty fields instead of failing.
var ErrDocumentLoad = errors.New("document load failed")

// DefaultMaxPages caps how many pages the loader will read from a single PDF.
// A pathological page count is treated as a load failure rather than a
// runaway aggregation.
const DefaultMaxPages = 200

// Loader turns uploaded resume bytes into per-page plain text.
type Loader struct {
	MaxPages int
}

// NewLoader returns a loader with the default page cap.
func NewLoader() *Loader {
	return &Loader{MaxPages: DefaultMaxPages}
}

// Pages extracts the text of each page of a .pdf or .docx payload, in page
// order. A scanned (image-only) PDF loads successfully and yields empty page
// texts; that is not an error.
func (l *Loader) Pages(filename string, data []byte) (pages []string, err error) {
	// The PDF content-stream parser panics on some malformed inputs.
	// Surface those as load failures instead of crashing the import.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrDocumentLoad, r)
		}
	}()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return l.pdfPages(data)
	case ".docx":
		return l.docxPages(data)
	default:
		return nil, fmt.Errorf("%w: unsupported file format %q (only pdf and docx are allowed)", ErrDocumentLoad, ext)
	}
}

func (l *Loader) pdfPages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	n := r.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrDocumentLoad)
	}
	if l.MaxPages > 0 && n > l.MaxPages {
		return nil, fmt.Errorf("%w: %d pages exceeds the limit of %d", ErrDocumentLoad, n, l.MaxPages)
	}
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that cannot be decoded contributes nothing; the
			// rest of the document is still worth extracting from.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// docxPages extracts a DOCX body as a single logical page. Paragraph
// boundaries become newlines so the section heuristics still see line breaks.
func (l *Loader) docxPages(data []byte) ([]string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTags.ReplaceAllString(content, " ")
	return []string{content}, nil
}
