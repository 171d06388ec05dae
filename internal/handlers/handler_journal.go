package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to manual journal entries.
type journalHandler struct {
	poster portssvc.JournalPosterSvc
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(poster portssvc.JournalPosterSvc) *journalHandler {
	return &journalHandler{poster: poster}
}

// registerJournalRoutes registers journal entry routes.
func registerJournalRoutes(rg *gin.RouterGroup, poster portssvc.JournalPosterSvc) {
	h := newJournalHandler(poster)

	journals := rg.Group("/journal-entries")
	{
		journals.POST("", h.createJournalEntry)
		journals.GET("", h.listJournalEntries)
		journals.GET("/periods", h.listJournalPeriods)
	}
}

// createJournalEntry godoc
// @Summary Submit a journal entry
// @Description Validates that the movements balance and hands the entry to the backend
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Debits and credits do not balance"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected the entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	subject, ok := requireSubject(c, logger)
	if !ok {
		return
	}

	entry, err := h.poster.SubmitJournalEntry(c.Request.Context(), req, subject)
	if err != nil {
		respondError(c, logger, err, "Failed to submit journal entry")
		return
	}

	logger.Info("Journal entry submitted", slog.String("entry_id", entry.ID), slog.String("folio", entry.Folio))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists journal entries newest first, optionally restricted to a month and year
// @Tags journal-entries
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListJournalEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.poster.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, res)
}

// listJournalPeriods godoc
// @Summary List journal periods
// @Description Months that hold journal entries, newest first, with their entry count
// @Tags journal-entries
// @Produce json
// @Success 200 {array} dto.JournalPeriodResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list periods"
// @Security BearerAuth
// @Router /journal-entries/periods [get]
func (h *journalHandler) listJournalPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periods, err := h.poster.ListJournalPeriods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, periods)
}
