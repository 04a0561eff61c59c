// Package document turns uploaded PDF and DOCX files into page-numbered text.
package document

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Extract converts data into pages according to the declared extension.
// PDF yields one page per physical page; DOCX has no page boundaries at
// this layer and yields a single page numbered 1.
func Extract(data []byte, ext string) ([]Page, error) {
	format, err := Detect(ext)
	if err != nil {
		return nil, err
	}

	var texts []string
	switch format {
	case FormatPDF:
		texts, err = extractPDF(data)
	case FormatDOCX:
		var text string
		text, err = extractDOCX(data)
		texts = []string{text}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExtractionFailed, format, err)
	}

	pages := make([]Page, len(texts))
	for i, t := range texts {
		pages[i] = Page{Number: i + 1, Text: normalize(t)}
	}
	return pages, nil
}

// normalize composes characters so that decomposed accents coming out of
// PDF glyph runs compare equal to what the reviewer echoes back.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return norm.NFC.String(s)
}
