package ai

import (
	"context"
	"errors"
)

var (
	// ErrReviewService wraps every failure talking to the model service.
	ErrReviewService = errors.New("review service error")
	ErrMissingAPIKey = errors.New("missing Gemini API key")
)

// Reviewer sends one page of text to a language model and returns its raw reply.
type Reviewer interface {
	Review(ctx context.Context, text string) (string, error)
}

// Noop never calls out and always reports nothing to fix.
type Noop struct{}

func (Noop) Review(ctx context.Context, text string) (string, error) { return "", nil }

// ReviewerFunc adapts a plain function to Reviewer.
type ReviewerFunc func(ctx context.Context, text string) (string, error)

func (f ReviewerFunc) Review(ctx context.Context, text string) (string, error) { return f(ctx, text) }
