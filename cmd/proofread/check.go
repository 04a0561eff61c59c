package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/proofreader/internal/document"
	"github.com/thywilljoshua/proofreader/internal/report"
	"github.com/thywilljoshua/proofreader/internal/review"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	var (
		out         string
		export      bool
		concurrency int
		model       string
	)

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Proofread a PDF or DOCX document",
		Long: `Proofread a PDF or DOCX document and print the findings as a markdown table.

Progress is written to stderr. Use --out or --export to also save the
findings as an Excel workbook.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			path := args[0]
			if _, err := document.Detect(document.Ext(path)); err != nil {
				return err
			}
			if model != "" {
				cfg.Gemini.Model = model
			}
			if concurrency > 0 {
				cfg.Review.Concurrency = concurrency
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			reviewer, err := newReviewer(cmd.Context(), cfg.Gemini, logger)
			if err != nil {
				return err
			}
			pipeline := review.New(reviewer,
				review.WithConcurrency(cfg.Review.Concurrency),
				review.WithLogger(logger),
				review.WithProgress(progressPrinter(cmd.ErrOrStderr())),
			)

			name := filepath.Base(path)
			logger.Info("checking document", slog.String("file", name), slog.String("model", cfg.Gemini.Model))
			res, err := pipeline.RunDocument(cmd.Context(), data, document.Ext(path))
			if err != nil {
				return err
			}

			if err := report.Markdown(cmd.OutOrStdout(), name, res); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}

			if out == "" && export {
				out = report.FileName(name)
			}
			if out == "" {
				return nil
			}
			xlsx, err := report.XLSX(res.Findings)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, xlsx, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Laporan disimpan ke %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the findings to this .xlsx file")
	cmd.Flags().BoolVar(&export, "export", false, "write the findings to hasil_proofread_<name>.xlsx")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "pages reviewed at once (default from PROOFREAD_REVIEW_CONCURRENCY)")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (default from PROOFREAD_GEMINI_MODEL)")
	return cmd
}

func progressPrinter(w io.Writer) func(review.Progress) {
	return func(p review.Progress) {
		fmt.Fprintf(w, "\rMemeriksa halaman %d/%d (%3.0f%%)", p.Done, p.Total, p.Fraction()*100)
		if p.Done == p.Total {
			fmt.Fprintln(w)
		}
	}
}
