package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", docxBody, err)
		}
		defer rc.Close()
		paras, err := bodyParagraphs(rc)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", docxBody, err)
		}
		return strings.Join(paras, "\n"), nil
	}
	return "", fmt.Errorf("%s not found", docxBody)
}

// bodyParagraphs returns the text of each w:p that is a direct child of
// w:body. Paragraphs nested in tables, text boxes or sections are skipped.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		paras  []string
		cur    strings.Builder
		depth  int
		body   = -1
		para   = -1
		inText bool
		sawDoc bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "document":
				sawDoc = true
			case "body":
				if body < 0 {
					body = depth
				}
			case "p":
				if body >= 0 && depth == body+1 {
					para = depth
					cur.Reset()
				}
			case "t":
				inText = para >= 0
			case "tab":
				if para >= 0 {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if para >= 0 {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch {
			case t.Name.Local == "t":
				inText = false
			case t.Name.Local == "p" && depth == para:
				paras = append(paras, cur.String())
				para = -1
			case t.Name.Local == "body" && depth == body:
				body = -1
			}
			depth--
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	if !sawDoc {
		return nil, errors.New("not a wordprocessing document")
	}
	return paras, nil
}
