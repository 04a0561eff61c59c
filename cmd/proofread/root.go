package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/proofreader/internal/ai"
	"github.com/thywilljoshua/proofreader/internal/config"
	"github.com/thywilljoshua/proofreader/internal/logging"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proofread",
		Short: "Check Indonesian documents for spelling and typing errors",
		Long: `proofread extracts the text of a PDF or DOCX document page by page,
asks a Gemini model to list misspellings against KBBI and PUEBI, and
reports every finding with the page it was found on.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error (overrides PROOFREAD_LOG_LEVEL)")
	cmd.PersistentFlags().String("log-format", "", "log format: text|json (overrides PROOFREAD_LOG_FORMAT)")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// newReviewer builds the model client. Replaced in tests.
var newReviewer = func(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (ai.Reviewer, error) {
	g, err := ai.NewGemini(ctx, ai.GeminiConfig{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout(),
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// setup loads and validates configuration, applies the persistent flags,
// and installs the logger. A missing API key stops here.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cfg.Log), nil
}
