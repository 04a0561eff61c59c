package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Page is the text of one logical page. Numbers start at 1 and have no gaps.
type Page struct {
	Number int    `json:"page"`
	Text   string `json:"text"`
}

// Format is a supported upload format, named by its file extension.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrExtractionFailed  = errors.New("extraction failed")
)

// Supported lists the accepted extensions in display order.
func Supported() []Format { return []Format{FormatPDF, FormatDOCX} }

// Ext returns the lowercased extension of name without the leading dot.
func Ext(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// Detect maps a declared extension ("pdf", ".PDF", ...) to a Format.
func Detect(ext string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		names := make([]string, 0, len(Supported()))
		for _, f := range Supported() {
			names = append(names, "."+string(f))
		}
		return "", fmt.Errorf("%w %q: upload one of %s", ErrUnsupportedFormat, ext, strings.Join(names, ", "))
	}
}
