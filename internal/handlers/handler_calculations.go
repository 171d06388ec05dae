package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// calculationHandler serves the pure previews a form shows while it is being filled in.
type calculationHandler struct {
	calculator portssvc.CalculatorSvc
}

func newCalculationHandler(calculator portssvc.CalculatorSvc) *calculationHandler {
	return &calculationHandler{calculator: calculator}
}

func registerCalculationRoutes(rg *gin.RouterGroup, calculator portssvc.CalculatorSvc) {
	h := newCalculationHandler(calculator)

	calculations := rg.Group("/calculations")
	{
		calculations.POST("/line-subtotal", h.lineSubtotal)
		calculations.POST("/invoice", h.previewInvoice)
		calculations.POST("/payroll", h.previewPayroll)
		calculations.POST("/journal", h.checkJournal)
	}
}

// lineSubtotal godoc
// @Summary Compute a line subtotal
// @Description Returns quantity x unit price of one invoice row
// @Tags calculations
// @Accept json
// @Produce json
// @Param line body dto.LineItemRequest true "Invoice row"
// @Success 200 {object} dto.LineSubtotalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quantity or price"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/line-subtotal [post]
func (h *calculationHandler) lineSubtotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LineItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	subtotal, err := h.calculator.LineSubtotal(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute subtotal")
		return
	}
	c.JSON(http.StatusOK, dto.LineSubtotalResponse{Subtotal: subtotal})
}

// previewInvoice godoc
// @Summary Preview invoice totals
// @Description Recomputes subtotal, tax and total of an invoice draft
// @Tags calculations
// @Accept json
// @Produce json
// @Param invoice body dto.InvoicePreviewRequest true "Invoice lines"
// @Success 200 {object} domain.InvoiceTotals
// @Failure 400 {object} dto.ErrorResponse "Invalid line"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/invoice [post]
func (h *calculationHandler) previewInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoicePreviewRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	totals, err := h.calculator.PreviewInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute invoice totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// previewPayroll godoc
// @Summary Preview payroll totals
// @Description Computes gross and net pay of a payroll draft
// @Tags calculations
// @Accept json
// @Produce json
// @Param payroll body dto.PayrollPreviewRequest true "Payroll inputs"
// @Success 200 {object} domain.PayrollTotals
// @Failure 400 {object} dto.ErrorResponse "Negative input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/payroll [post]
func (h *calculationHandler) previewPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PayrollPreviewRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	totals, err := h.calculator.PreviewPayroll(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute payroll totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// checkJournal godoc
// @Summary Check a journal entry draft
// @Description Aggregates the movements and reports whether the entry balances. An unbalanced draft is not an error here.
// @Tags calculations
// @Accept json
// @Produce json
// @Param journal body dto.JournalCheckRequest true "Movements"
// @Success 200 {object} dto.JournalCheckResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid movement"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/journal [post]
func (h *calculationHandler) checkJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.JournalCheckRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	res, err := h.calculator.CheckJournal(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to check journal entry")
		return
	}
	c.JSON(http.StatusOK, res)
}
