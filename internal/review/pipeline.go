package review

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thywilljoshua/proofreader/internal/ai"
	"github.com/thywilljoshua/proofreader/internal/document"
)

// Result is the outcome of one run: findings grouped by page in page order.
type Result struct {
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
}

// Pipeline reviews pages with a bounded number of requests in flight.
type Pipeline struct {
	reviewer    ai.Reviewer
	concurrency int
	logger      *slog.Logger
	progress    func(Progress)
}

type Option func(*Pipeline)

// WithConcurrency caps the number of pages reviewed at once. The default
// of 1 reviews pages strictly one after another.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithProgress registers fn to be called after each page completes.
// Calls never overlap.
func WithProgress(fn func(Progress)) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

func New(reviewer ai.Reviewer, opts ...Option) *Pipeline {
	p := &Pipeline{
		reviewer:    reviewer,
		concurrency: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunDocument extracts data and reviews the resulting pages. Extraction
// errors are returned as is and stop the run before any page is reviewed.
func (p *Pipeline) RunDocument(ctx context.Context, data []byte, ext string) (Result, error) {
	pages, err := document.Extract(data, ext)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info("document extracted", slog.String("format", ext), slog.Int("pages", len(pages)))
	return p.Run(ctx, pages)
}

// Run reviews every page and collects one Finding per parsed correction.
// A page whose review fails contributes nothing and does not stop the
// others. The error is non-nil only when ctx ends before all pages ran.
func (p *Pipeline) Run(ctx context.Context, pages []document.Page) (Result, error) {
	start := time.Now()
	perPage := make([][]Finding, len(pages))

	var (
		mu     sync.Mutex
		done   int
		failed int
	)
	finish := func(page document.Page, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		done++
		if !ok {
			failed++
		}
		if p.progress != nil {
			p.progress(Progress{Done: done, Total: len(pages), Page: page.Number})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			findings, err := p.reviewPage(gctx, page)
			if err != nil {
				p.logger.Warn("page review failed",
					slog.Int("page", page.Number),
					slog.String("error", err.Error()),
				)
				finish(page, false)
				return nil
			}
			perPage[i] = findings
			finish(page, true)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// Pages already in flight fail on cancellation without ending the group.
		err = ctx.Err()
	}

	var res Result
	for _, fs := range perPage {
		res.Findings = append(res.Findings, fs...)
	}
	res.Findings = nonNil(res.Findings)
	res.Summary = Summary{
		Pages:       len(pages),
		Findings:    len(res.Findings),
		FailedPages: failed + len(pages) - done,
	}

	p.logger.Info("review complete",
		slog.Int("pages", res.Summary.Pages),
		slog.Int("findings", res.Summary.Findings),
		slog.Int("failed_pages", res.Summary.FailedPages),
		slog.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		return res, fmt.Errorf("review interrupted: %w", err)
	}
	return res, nil
}

func (p *Pipeline) reviewPage(ctx context.Context, page document.Page) ([]Finding, error) {
	raw, err := p.reviewer.Review(ctx, page.Text)
	if err != nil {
		return nil, err
	}
	if lines := Unmatched(raw); len(lines) > 0 {
		p.logger.Debug("ignored malformed reply lines",
			slog.Int("page", page.Number),
			slog.Any("lines", lines),
		)
	}
	corrections := Parse(raw)
	out := make([]Finding, len(corrections))
	for i, c := range corrections {
		out[i] = Finding{Wrong: c.Wrong, Correct: c.Correct, Page: page.Number}
	}
	return out, nil
}

func nonNil(fs []Finding) []Finding {
	if fs == nil {
		return []Finding{}
	}
	return fs
}
