package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	genai "google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
	defaultWait    = 500 * time.Millisecond
)

// GeminiConfig carries everything the client needs; nothing is read from
// the environment here.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string // overrides the public endpoint, used by tests and proxies
	Timeout    time.Duration
	MaxRetries int
	RetryWait  time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Gemini struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	retryWait  time.Duration
	logger     *slog.Logger
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = defaultWait
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	c, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{
		client:     c,
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryWait:  cfg.RetryWait,
		logger:     cfg.Logger,
	}, nil
}

func (g *Gemini) Model() string { return g.model }

// Review returns the model's raw reply for text. Blank text short-circuits
// without a request. Failed attempts are retried with exponential backoff
// up to the configured limit; each attempt has its own timeout.
func (g *Gemini) Review(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(text), genai.RoleUser),
	}
	genCfg := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)}

	attempt := 0
	op := func() (string, error) {
		attempt++
		if err := ctx.Err(); err != nil {
			return "", backoff.Permanent(err)
		}
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		res, err := g.client.Models.GenerateContent(callCtx, g.model, contents, genCfg)
		if err != nil {
			if ctx.Err() != nil {
				return "", backoff.Permanent(err)
			}
			if errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("request timed out after %s: %w", g.timeout, err)
			}
			g.logger.Debug("gemini attempt failed",
				slog.Int("attempt", attempt),
				slog.String("model", g.model),
				slog.String("error", err.Error()),
			)
			return "", err
		}
		return res.Text(), nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = g.retryWait
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(g.maxRetries)), ctx)

	out, err := backoff.RetryWithData(op, policy)
	if err != nil {
		return "", fmt.Errorf("%w: gemini %s after %d attempt(s): %w", ErrReviewService, g.model, attempt, err)
	}
	return out, nil
}
