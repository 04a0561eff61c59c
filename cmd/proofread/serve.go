package main

import (
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/proofreader/internal/review"
	"github.com/thywilljoshua/proofreader/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the proofreader over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			reviewer, err := newReviewer(cmd.Context(), cfg.Gemini, logger)
			if err != nil {
				return err
			}
			pipeline := review.New(reviewer,
				review.WithConcurrency(cfg.Review.Concurrency),
				review.WithLogger(logger),
			)
			return server.New(cfg.Server, pipeline, logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from PROOFREAD_SERVER_ADDR or PORT)")
	return cmd
}
