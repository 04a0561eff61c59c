// Package report renders review findings for download and for the terminal.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/thywilljoshua/proofreader/internal/review"
)

const (
	SheetName = "Hasil Proofread"
	MIMEType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Headers are the column labels, in column order.
var Headers = []string{
	"Kata/Frasa Salah",
	"Perbaikan Sesuai KBBI",
	"Ditemukan di Halaman",
}

// XLSX returns a single-sheet workbook with a header row and one row per
// finding, in input order.
func XLSX(findings []review.Finding) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet so the workbook has exactly one.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, fd := range findings {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, &[]any{fd.Wrong, fd.Correct, fd.Page}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "B", 40)
	_ = f.SetColWidth(SheetName, "C", "C", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName derives the download name from the uploaded file's name:
// "Bab 1.final.docx" becomes "hasil_proofread_Bab 1.xlsx".
func FileName(upload string) string {
	base := filepath.Base(upload)
	stem, _, _ := strings.Cut(base, ".")
	if stem == "" || stem == "/" {
		stem = "dokumen"
	}
	return "hasil_proofread_" + stem + ".xlsx"
}
