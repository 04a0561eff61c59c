// Package review runs extracted pages through a Reviewer and turns the
// replies into page-annotated findings.
package review

// Correction is one wrong/correct pair parsed from a model reply.
type Correction struct {
	Wrong   string
	Correct string
}

// Finding is a correction located on a page.
type Finding struct {
	Wrong   string `json:"wrong"`
	Correct string `json:"correct"`
	Page    int    `json:"page"`
}

// Progress is emitted after every reviewed page.
type Progress struct {
	Done  int // pages finished so far
	Total int
	Page  int // number of the page that just finished
}

func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// Summary describes a finished run.
type Summary struct {
	Pages       int `json:"pages"`
	Findings    int `json:"findings"`
	FailedPages int `json:"failed_pages"`
}
