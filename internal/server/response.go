package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thywilljoshua/proofreader/internal/document"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	errMissingFile  = errors.New("missing file")
	errFileTooLarge = errors.New("file too large")
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// mapError translates pipeline errors to HTTP status codes and error codes.
func mapError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, errMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "upload a document in the \"file\" form field"
	case errors.Is(err, errFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, document.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "format file tidak didukung; unggah .pdf atau .docx"
	case errors.Is(err, document.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED", err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "REVIEW_INTERRUPTED", "review did not finish in time"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

func handleError(c *gin.Context, err error) {
	status, code, msg := mapError(err)
	respondError(c, status, code, msg)
}
