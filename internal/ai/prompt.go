package ai

import "strings"

// Markers and sentinel of the line grammar the model is asked to answer in.
const (
	WrongMarker   = "[SALAH]"
	CorrectMarker = "[BENAR]"
	Arrow         = "->"
	NoErrors      = "TIDAK ADA KESALAHAN"
)

const promptTemplate = `Anda adalah seorang editor dan ahli bahasa Indonesia profesional yang sangat teliti.
Tugas Anda adalah melakukan proofread pada teks berikut.
Fokus utama Anda adalah:
1. Memperbaiki kesalahan ketik (typo).
2. Memastikan semua kata sesuai dengan Kamus Besar Bahasa Indonesia (KBBI).
3. Memperbaiki kesalahan tata bahasa sederhana dan ejaan agar sesuai dengan Pedoman Umum Ejaan Bahasa Indonesia (PUEBI).

PENTING: Berikan hasil dalam format yang ketat, satu kesalahan per baris, tanpa teks lain. Untuk setiap kesalahan, gunakan format:
[SALAH] kata atau frasa yang salah -> [BENAR] kata atau frasa perbaikan

Jika tidak ada kesalahan sama sekali, kembalikan teks: "TIDAK ADA KESALAHAN"

Berikut adalah teks yang harus Anda periksa:
---
`

// BuildPrompt embeds text verbatim after the instructions.
func BuildPrompt(text string) string {
	var b strings.Builder
	b.Grow(len(promptTemplate) + len(text))
	b.WriteString(promptTemplate)
	b.WriteString(text)
	return b.String()
}
