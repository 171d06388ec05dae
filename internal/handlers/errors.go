package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP replies:
// validation 400, unbalanced 422, backend failure 502, anything else 500.
func respondError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	var unbalanced *apperrors.UnbalancedError
	var submission *apperrors.SubmissionError
	var backend *apperrors.BackendError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &unbalanced):
		logger.Warn("Journal entry rejected as unbalanced", slog.String("discrepancy", unbalanced.Discrepancy))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:       err.Error(),
			TotalDebit:  unbalanced.TotalDebit,
			TotalCredit: unbalanced.TotalCredit,
			Discrepancy: unbalanced.Discrepancy,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &submission):
		logger.Error("Backend rejected submission", slog.String("error", err.Error()), slog.Int("backend_status", submission.StatusCode))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: submission.Message})
	case errors.As(err, &backend):
		logger.Error("Backend request failed", slog.String("error", err.Error()), slog.Int("backend_status", backend.StatusCode))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: backend.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request rejected by storage", slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ErrorResponse{Error: appErr.Message})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failure})
	}
}

// bindJSON binds the request body into req and replies 400 when it cannot.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// requireSubject returns the authenticated caller or replies 401.
func requireSubject(c *gin.Context, logger *slog.Logger) (string, bool) {
	subject, ok := middleware.GetSubjectFromContext(c)
	if !ok {
		logger.Error("Subject not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return subject, true
}
