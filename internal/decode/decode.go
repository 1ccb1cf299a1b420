// Package decode turns an uploaded draft into the ordered sequence of raw
// text lines the formatting core consumes. Decoders discard any prior
// formatting; structure found in richer containers is re-expressed as the
// marker prefixes the classifier recognizes.
package decode

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Decoder extracts raw lines from draft bytes.
type Decoder interface {
	Lines(r io.Reader, filename string) ([]string, error)
}

// SupportedExtensions lists draft extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// Options adjusts decoder behavior.
type Options struct {
	// PDFFallbackPdftotext enables shelling out to pdftotext when the
	// Go PDF library cannot extract text.
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate decoder for a filename.
func ForFile(filename string, opts Options) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextDecoder{}, nil
	case ".md", ".markdown":
		return &MarkdownDecoder{}, nil
	case ".html", ".htm":
		return &HTMLDecoder{}, nil
	case ".pdf":
		return &PDFDecoder{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXDecoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
