package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/thywilljoshua/proofreader/internal/document"
	"github.com/thywilljoshua/proofreader/internal/report"
	"github.com/thywilljoshua/proofreader/internal/review"
)

// DocumentReviewer runs the full extract-and-review pipeline on an upload.
type DocumentReviewer interface {
	RunDocument(ctx context.Context, data []byte, ext string) (review.Result, error)
}

// ReviewResponse is the payload of a successful review.
type ReviewResponse struct {
	FileName    string           `json:"file_name"`
	Pages       int              `json:"pages"`
	FailedPages int              `json:"failed_pages"`
	Findings    []review.Finding `json:"findings"`
}

type ReviewHandler struct {
	reviewer  DocumentReviewer
	maxUpload int64
	logger    *slog.Logger
}

func NewReviewHandler(reviewer DocumentReviewer, maxUpload int64, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{reviewer: reviewer, maxUpload: maxUpload, logger: logger}
}

// Health reports liveness.
func (h *ReviewHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Review handles POST /api/v1/reviews.
func (h *ReviewHandler) Review(c *gin.Context) {
	name, res, err := h.run(c)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, ReviewResponse{
		FileName:    name,
		Pages:       res.Summary.Pages,
		FailedPages: res.Summary.FailedPages,
		Findings:    res.Findings,
	})
}

// Export handles POST /api/v1/reviews/export and answers with the XLSX report.
func (h *ReviewHandler) Export(c *gin.Context) {
	name, res, err := h.run(c)
	if err != nil {
		handleError(c, err)
		return
	}
	data, err := report.XLSX(res.Findings)
	if err != nil {
		h.logger.Error("xlsx export failed", slog.String("file", name), slog.String("error", err.Error()))
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(name)))
	c.Data(http.StatusOK, report.MIMEType, data)
}

func (h *ReviewHandler) run(c *gin.Context) (string, review.Result, error) {
	header, data, err := h.readUpload(c)
	if err != nil {
		return "", review.Result{}, err
	}
	name := filepath.Base(header.Filename)
	h.logger.Info("review started",
		slog.String("request_id", c.GetString("request_id")),
		slog.String("file", name),
		slog.Int("bytes", len(data)),
	)
	res, err := h.reviewer.RunDocument(c.Request.Context(), data, document.Ext(name))
	return name, res, err
}

func (h *ReviewHandler) readUpload(c *gin.Context) (*multipart.FileHeader, []byte, error) {
	if h.maxUpload > 0 {
		if c.Request.ContentLength > h.maxUpload {
			return nil, nil, errFileTooLarge
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, errFileTooLarge
		}
		return nil, nil, fmt.Errorf("%w: %v", errMissingFile, err)
	}
	defer file.Close()

	// Reject unknown formats before reading the body.
	if _, err := document.Detect(document.Ext(header.Filename)); err != nil {
		return nil, nil, err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}
	return header, data, nil
}
