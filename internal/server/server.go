// Package server exposes the proofreading pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thywilljoshua/proofreader/internal/config"
)

const shutdownTimeout = 10 * time.Second

// NewRouter wires middleware and routes around h.
func NewRouter(h *ReviewHandler, environment string, logger *slog.Logger) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(logger))

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	reviews := v1.Group("/reviews")
	reviews.POST("", h.Review)
	reviews.POST("/export", h.Export)

	return r
}

// Server is an HTTP server bound to the configured address.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

func New(cfg config.ServerConfig, reviewer DocumentReviewer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	h := NewReviewHandler(reviewer, cfg.MaxUploadBytes(), logger)
	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(h, cfg.Environment, logger),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
