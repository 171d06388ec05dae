package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests that submit invoices, payroll receipts,
// customer receipts and supplier payments.
type documentHandler struct {
	poster portssvc.PosterSvcFacade
}

func newDocumentHandler(poster portssvc.PosterSvcFacade) *documentHandler {
	return &documentHandler{poster: poster}
}

func registerDocumentRoutes(rg *gin.RouterGroup, poster portssvc.PosterSvcFacade) {
	h := newDocumentHandler(poster)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/sales", h.createSaleInvoice)
		invoices.POST("/purchases", h.createPurchaseInvoice)
	}
	rg.POST("/payroll-receipts", h.createPayrollReceipt)
	rg.POST("/receipts", h.createReceipt)
	rg.POST("/payments", h.createPayment)
}

type invoiceSubmitter func(ctx context.Context, req dto.CreateInvoiceRequest, subject string) (*domain.Invoice, error)

type cashSubmitter func(ctx context.Context, req dto.CreateCashMovementRequest, subject string) (*domain.CashMovement, error)

// createSaleInvoice godoc
// @Summary Submit a sales invoice
// @Description Recomputes the totals, derives the sales journal entry and hands both to the backend
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Sales invoice; counterpartyID is the client"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected the invoice"
// @Security BearerAuth
// @Router /invoices/sales [post]
func (h *documentHandler) createSaleInvoice(c *gin.Context) {
	h.createInvoice(c, h.poster.SubmitSaleInvoice)
}

// createPurchaseInvoice godoc
// @Summary Submit a purchase invoice
// @Description Recomputes the totals, derives the purchase journal entry and hands both to the backend
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Purchase invoice; counterpartyID is the supplier"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected the invoice"
// @Security BearerAuth
// @Router /invoices/purchases [post]
func (h *documentHandler) createPurchaseInvoice(c *gin.Context) {
	h.createInvoice(c, h.poster.SubmitPurchaseInvoice)
}

func (h *documentHandler) createInvoice(c *gin.Context, submit invoiceSubmitter) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	subject, ok := requireSubject(c, logger)
	if !ok {
		return
	}

	invoice, err := submit(c.Request.Context(), req, subject)
	if err != nil {
		respondError(c, logger, err, "Failed to submit invoice")
		return
	}

	logger.Info("Invoice submitted",
		slog.String("kind", string(invoice.Kind)),
		slog.String("invoice_id", invoice.ID),
		slog.String("folio", invoice.Folio))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// createPayrollReceipt godoc
// @Summary Submit a payroll receipt
// @Description Computes gross and net pay, derives the payroll journal entry and hands both to the backend
// @Tags payroll
// @Accept json
// @Produce json
// @Param receipt body dto.CreatePayrollReceiptRequest true "Payroll receipt"
// @Success 201 {object} dto.PayrollReceiptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected the receipt"
// @Security BearerAuth
// @Router /payroll-receipts [post]
func (h *documentHandler) createPayrollReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayrollReceiptRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	subject, ok := requireSubject(c, logger)
	if !ok {
		return
	}

	receipt, err := h.poster.SubmitPayrollReceipt(c.Request.Context(), req, subject)
	if err != nil {
		respondError(c, logger, err, "Failed to submit payroll receipt")
		return
	}

	logger.Info("Payroll receipt submitted", slog.String("receipt_id", receipt.ID), slog.String("folio", receipt.Folio))
	c.JSON(http.StatusCreated, dto.ToPayrollReceiptResponse(receipt))
}

// createReceipt godoc
// @Summary Submit a customer receipt
// @Description Records money received from a client into a bank account
// @Tags cash
// @Accept json
// @Produce json
// @Param receipt body dto.CreateCashMovementRequest true "Customer receipt; counterpartyID is the client"
// @Success 201 {object} dto.CashMovementResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected the receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *documentHandler) createReceipt(c *gin.Context) {
	h.createCashMovement(c, h.poster.SubmitReceipt)
}

// createPayment godoc
// @Summary Submit a supplier payment
// @Description Records money paid to a supplier from a bank account
// @Tags cash
// @Accept json
// @Produce json
// @Param payment body dto.CreateCashMovementRequest true "Supplier payment; counterpartyID is the supplier"
// @Success 201 {object} dto.CashMovementResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected the payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *documentHandler) createPayment(c *gin.Context) {
	h.createCashMovement(c, h.poster.SubmitPayment)
}

func (h *documentHandler) createCashMovement(c *gin.Context, submit cashSubmitter) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashMovementRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	subject, ok := requireSubject(c, logger)
	if !ok {
		return
	}

	movement, err := submit(c.Request.Context(), req, subject)
	if err != nil {
		respondError(c, logger, err, "Failed to submit cash movement")
		return
	}

	logger.Info("Cash movement submitted",
		slog.String("kind", string(movement.Kind)),
		slog.String("movement_id", movement.ID),
		slog.String("folio", movement.Folio))
	c.JSON(http.StatusCreated, dto.ToCashMovementResponse(movement))
}
