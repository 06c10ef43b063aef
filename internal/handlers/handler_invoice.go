package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	queryService   portssvc.QuerySvcFacade
}

// RegisterInvoiceRoutes registers routes related to invoices and their payments.
// They must run behind ScopeMiddleware.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, paymentService portssvc.PaymentSvcFacade, queryService portssvc.QuerySvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService, queryService: queryService}
	ph := &paymentHandler{paymentService: paymentService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.POST("/:invoiceID/void", h.voidInvoice)
		invoices.PUT("/:invoiceID/amount", h.amendAmount)
		invoices.GET("/:invoiceID/balance", h.getBalance)
		invoices.GET("/:invoiceID/payments", ph.listPayments)
		invoices.POST("/:invoiceID/payments", ph.addPayment)
	}

	payments := rg.Group("/payments")
	{
		payments.PUT("/:paymentID", ph.updatePayment)
		payments.DELETE("/:paymentID", ph.deletePayment)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Bills a stay. The amount is the number of nights times the rate, rounded to cents.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := req.ToDomain()
	if err != nil {
		respondError(c, apperrors.NewValidationFailedError(err.Error()), "")
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), scope, input)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices of the selected A/R entity ordered by ID. Year and month select invoices whose stay overlaps that period.
// @Tags invoices
// @Produce json
// @Param outstanding query bool false "Only invoices with a positive balance"
// @Param client query string false "Case-insensitive client name filter"
// @Param company query string false "Exact company"
// @Param year query int false "Stay year"
// @Param month query int false "Stay month (requires year)"
// @Param includeVoid query bool false "Include VOID invoices"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter, month without year, or bad nextToken"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.InvoiceFilter{
		Outstanding:        params.Outstanding,
		ClientNameContains: params.Client,
		Company:            params.Company,
		Year:               params.Year,
		Month:              params.Month,
		IncludeVoid:        params.IncludeVoid,
		Limit:              params.Limit,
	}
	if params.NextToken != "" {
		afterID, err := pagination.DecodeIDToken(params.NextToken)
		if err != nil {
			respondError(c, apperrors.NewValidationFailedError("Invalid nextToken"), "")
			return
		}
		filter.AfterID = afterID
	}

	invoices, err := h.queryService.ListInvoices(c.Request.Context(), scope, filter)
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}

	resp := dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceViewResponse(invoices)}
	if n := len(invoices); n > 0 {
		resp.NextToken = pagination.NextToken(n, params.Limit, invoices[n-1].InvoiceID)
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Returns the invoice with its client, totals and payments. VOID invoices stay readable.
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	detail, err := h.invoiceService.GetInvoice(c.Request.Context(), scope, invoiceID)
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceDetailResponse(detail))
}

// voidInvoice godoc
// @Summary Void an invoice
// @Description Marks the invoice VOID. Voiding is permanent and repeating it has no effect.
// @Tags invoices
// @Param invoiceID path int true "Invoice ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/void [post]
func (h *invoiceHandler) voidInvoice(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	if err := h.invoiceService.VoidInvoice(c.Request.Context(), scope, invoiceID); err != nil {
		respondError(c, err, "Failed to void invoice")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice voided", slog.Int64("invoice_id", invoiceID))
	c.Status(http.StatusNoContent)
}

// amendAmount godoc
// @Summary Amend an invoice amount
// @Description Replaces the amount of an OPEN invoice. The new amount cannot be below what has been paid.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Param request body dto.AmendAmountRequest true "New amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Invoice is VOID or amount is below paid"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/amount [put]
func (h *invoiceHandler) amendAmount(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}
	var req dto.AmendAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()

	if err := h.invoiceService.AmendAmount(ctx, scope, invoiceID, *req.Amount); err != nil {
		respondError(c, err, "Failed to amend invoice amount")
		return
	}
	summary, err := h.invoiceService.Balance(ctx, scope, invoiceID)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(invoiceID, summary))
}

// getBalance godoc
// @Summary Invoice balance
// @Tags invoices
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/balance [get]
func (h *invoiceHandler) getBalance(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	summary, err := h.invoiceService.Balance(c.Request.Context(), scope, invoiceID)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(invoiceID, summary))
}
