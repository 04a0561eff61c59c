package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/thywilljoshua/proofreader/internal/report"
	"github.com/thywilljoshua/proofreader/internal/review"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetName}, f.GetSheetList())
	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	return rows
}

func TestXLSX_Empty(t *testing.T) {
	data, err := report.XLSX(nil)
	require.NoError(t, err)

	rows := readRows(t, data)
	assert.Equal(t, [][]string{report.Headers}, rows)
}

func TestXLSX_RowsInInputOrder(t *testing.T) {
	findings := []review.Finding{
		{Wrong: "sistim", Correct: "sistem", Page: 1},
		{Wrong: "resiko", Correct: "risiko", Page: 3},
		{Wrong: "di mana-mana", Correct: "di mana-mana", Page: 2},
	}

	data, err := report.XLSX(findings)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, len(findings)+1)
	assert.Equal(t, []string{"Kata/Frasa Salah", "Perbaikan Sesuai KBBI", "Ditemukan di Halaman"}, rows[0])
	assert.Equal(t, []string{"sistim", "sistem", "1"}, rows[1])
	assert.Equal(t, []string{"resiko", "risiko", "3"}, rows[2])
	assert.Equal(t, []string{"di mana-mana", "di mana-mana", "2"}, rows[3])
}

func TestXLSX_PageIsNumeric(t *testing.T) {
	data, err := report.XLSX([]review.Finding{{Wrong: "a", Correct: "b", Page: 7}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	typ, err := f.GetCellType(report.SheetName, "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"laporan.pdf":            "hasil_proofread_laporan.xlsx",
		"Bab 1.final.docx":       "hasil_proofread_Bab 1.xlsx",
		"/tmp/uploads/tesis.PDF": "hasil_proofread_tesis.xlsx",
		".docx":                  "hasil_proofread_dokumen.xlsx",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, report.FileName(in))
		})
	}
}

func TestMarkdown_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	res := review.Result{
		Findings: []review.Finding{{Wrong: "sistim", Correct: "sistem", Page: 2}},
		Summary:  review.Summary{Pages: 3, Findings: 1},
	}

	require.NoError(t, report.Markdown(&buf, "laporan.pdf", res))

	out := buf.String()
	assert.Contains(t, out, "# Hasil Proofread: laporan.pdf")
	assert.Contains(t, out, "Kata/Frasa Salah")
	assert.Contains(t, out, "sistim")
	assert.Contains(t, out, "sistem")
}

func TestMarkdown_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	res := review.Result{Findings: []review.Finding{}, Summary: review.Summary{Pages: 1}}

	require.NoError(t, report.Markdown(&buf, "surat.docx", res))

	assert.Contains(t, buf.String(), "Tidak ada kesalahan")
	assert.NotContains(t, buf.String(), "Perbaikan Sesuai KBBI")
}
