package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/thywilljoshua/proofreader/internal/review"
)

// Markdown writes a findings table for the named document to w.
func Markdown(w io.Writer, name string, res review.Result) error {
	md := markdown.NewMarkdown(w)
	md.H1("Hasil Proofread: " + name)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Halaman Diperiksa", "Potensi Kesalahan", "Halaman Gagal Diperiksa"},
		Rows: [][]string{{
			strconv.Itoa(res.Summary.Pages),
			strconv.Itoa(res.Summary.Findings),
			strconv.Itoa(res.Summary.FailedPages),
		}},
	})
	md.PlainText("")

	switch {
	case res.Summary.FailedPages > 0 && len(res.Findings) == 0:
		md.Warningf("%d halaman gagal diperiksa; hasil mungkin tidak lengkap.", res.Summary.FailedPages)
	case len(res.Findings) == 0:
		md.Tip("Tidak ada kesalahan ejaan atau ketik yang ditemukan dalam dokumen.")
	default:
		if res.Summary.FailedPages > 0 {
			md.Warningf("%d halaman gagal diperiksa; hasil mungkin tidak lengkap.", res.Summary.FailedPages)
			md.PlainText("")
		}
		rows := make([][]string, len(res.Findings))
		for i, f := range res.Findings {
			rows[i] = []string{cell(f.Wrong), cell(f.Correct), strconv.Itoa(f.Page)}
		}
		md.Table(markdown.TableSet{Header: Headers, Rows: rows})
	}
	md.PlainText("")
	return md.Build()
}

// cell keeps a value on one table line.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
