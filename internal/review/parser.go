package review

import (
	"regexp"
	"strings"

	"github.com/thywilljoshua/proofreader/internal/ai"
)

var (
	wrongRe   = regexp.QuoteMeta(ai.WrongMarker)
	correctRe = regexp.QuoteMeta(ai.CorrectMarker)

	// One correction per line: [SALAH] wrong -> [BENAR] correct.
	correctionRe = regexp.MustCompile(`(?i)` + wrongRe + `\s*(.*?)\s*` + regexp.QuoteMeta(ai.Arrow) + `\s*` + correctRe + `\s*(.*?)\s*\n`)
	markerRe     = regexp.MustCompile(`(?i)` + wrongRe + `|` + correctRe)
)

var noErrorSentinels = []string{ai.NoErrors, "NO ERRORS FOUND"}

// Parse extracts corrections from a raw model reply in source order.
// The "no errors" sentinel, an empty reply and lines that do not follow
// the grammar all yield nothing.
func Parse(raw string) []Correction {
	if isNoErrors(raw) {
		return nil
	}
	var out []Correction
	for _, m := range correctionRe.FindAllStringSubmatch(terminate(raw), -1) {
		wrong := strings.TrimSpace(m[1])
		correct := strings.TrimSpace(m[2])
		if wrong == "" || correct == "" {
			continue
		}
		out = append(out, Correction{Wrong: wrong, Correct: correct})
	}
	return out
}

// Unmatched returns the lines of raw that mention a marker but that no
// correction was parsed from.
func Unmatched(raw string) []string {
	if isNoErrors(raw) {
		return nil
	}
	text := terminate(raw)
	matched := make([]bool, len(text))
	for _, loc := range correctionRe.FindAllStringIndex(text, -1) {
		for i := loc[0]; i < loc[1]; i++ {
			matched[i] = true
		}
	}

	var out []string
	start := 0
	for start < len(text) {
		end := strings.IndexByte(text[start:], '\n') + start
		line := text[start:end]
		touched := false
		for i := start; i < end; i++ {
			if matched[i] {
				touched = true
				break
			}
		}
		if !touched && markerRe.MatchString(line) {
			out = append(out, strings.TrimSpace(line))
		}
		start = end + 1
	}
	return out
}

// terminate supplies the final newline the grammar expects.
func terminate(raw string) string {
	if raw == "" || strings.HasSuffix(raw, "\n") {
		return raw
	}
	return raw + "\n"
}

func isNoErrors(raw string) bool {
	s := strings.Trim(strings.TrimSpace(raw), `"'.`)
	for _, sentinel := range noErrorSentinels {
		if strings.EqualFold(s, sentinel) {
			return true
		}
	}
	return false
}
