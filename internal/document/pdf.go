package document

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	rpdf "rsc.io/pdf"
)

// kernSpace is the TJ adjustment, in thousandths of an em, past which a
// backwards kern is read as a word gap.
const kernSpace = 200

func extractPDF(data []byte) (pages []string, err error) {
	// rsc.io/pdf reports malformed objects by panicking.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	doc, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	n := doc.NumPage()
	if n <= 0 {
		return nil, errors.New("pdf has no pages")
	}
	pages = make([]string, n)
	for i := 1; i <= n; i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			return nil, fmt.Errorf("page %d missing from page tree", i)
		}
		pages[i-1] = pageText(p)
	}
	return pages, nil
}

// pageText walks the page content streams and returns their text in
// stream order. Space glyphs are kept as written. A baseline change starts
// a new line; a horizontal move or a wide TJ kern inserts a space.
func pageText(p rpdf.Page) string {
	w := &textWalker{page: p}
	contents := p.V.Key("Contents")
	streams := []rpdf.Value{contents}
	if contents.Kind() == rpdf.Array {
		streams = streams[:0]
		for i := 0; i < contents.Len(); i++ {
			streams = append(streams, contents.Index(i))
		}
	}
	for _, strm := range streams {
		// A page without content is blank.
		if strm.Kind() == rpdf.Stream {
			rpdf.Interpret(strm, w.do)
		}
	}
	return w.b.String()
}

type textWalker struct {
	page  rpdf.Page
	enc   rpdf.TextEncoding
	saved []rpdf.TextEncoding

	b       strings.Builder
	y       float64 // baseline of the current text line
	lastY   float64 // baseline of the last text written
	leading float64
	started bool
	gap     bool
	spaced  bool // last text written ends in a space
}

func (w *textWalker) do(stk *rpdf.Stack, op string) {
	args := make([]rpdf.Value, stk.Len())
	for i := len(args) - 1; i >= 0; i-- {
		args[i] = stk.Pop()
	}

	switch op {
	case "q":
		w.saved = append(w.saved, w.enc)
	case "Q":
		if n := len(w.saved); n > 0 {
			w.enc = w.saved[n-1]
			w.saved = w.saved[:n-1]
		}
	case "BT":
		w.y = 0
		w.gap = true
	case "Tf":
		if len(args) == 2 {
			w.enc = w.page.Font(args[0].Name()).Encoder()
		}
	case "TL":
		if len(args) == 1 {
			w.leading = args[0].Float64()
		}
	case "TD", "Td":
		if len(args) != 2 {
			return
		}
		if op == "TD" {
			w.leading = -args[1].Float64()
		}
		w.y += args[1].Float64()
		if args[0].Float64() != 0 {
			w.gap = true
		}
	case "Tm":
		if len(args) == 6 {
			w.y = args[5].Float64()
			w.gap = true
		}
	case "T*":
		w.y -= w.leading
	case "'":
		if len(args) == 1 {
			w.y -= w.leading
			w.show(args[0].RawString())
		}
	case "\"":
		if len(args) == 3 {
			w.y -= w.leading
			w.show(args[2].RawString())
		}
	case "Tj":
		if len(args) == 1 {
			w.show(args[0].RawString())
		}
	case "TJ":
		if len(args) != 1 {
			return
		}
		arr := args[0]
		for i := 0; i < arr.Len(); i++ {
			v := arr.Index(i)
			if v.Kind() == rpdf.String {
				w.show(v.RawString())
			} else if -v.Float64() > kernSpace {
				w.gap = true
			}
		}
	}
}

func (w *textWalker) show(raw string) {
	if raw == "" {
		return
	}
	s := raw
	if w.enc != nil {
		s = w.enc.Decode(raw)
	}
	if w.started {
		switch {
		case math.Abs(w.y-w.lastY) > 0.01:
			w.b.WriteByte('\n')
		case w.gap && !w.spaced && !strings.HasPrefix(s, " "):
			w.b.WriteByte(' ')
		}
	}
	w.b.WriteString(s)
	w.spaced = strings.HasSuffix(s, " ")
	w.lastY = w.y
	w.started = true
	w.gap = false
}
