package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments. Its routes are
// registered by RegisterInvoiceRoutes.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// listPayments godoc
// @Summary List payments of an invoice
// @Description Payments ordered by date. Payments of VOID invoices remain readable.
// @Tags payments
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), scope, invoiceID)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// addPayment godoc
// @Summary Record a payment
// @Description Records a payment against an OPEN invoice. The payment cannot exceed the open balance.
// @Tags payments
// @Accept json
// @Produce json
// @Param invoiceID path int true "Invoice ID"
// @Param payment body dto.PaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Invoice is VOID, already paid, or the payment exceeds the balance"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/payments [post]
func (h *paymentHandler) addPayment(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "invoiceID")
	if !ok {
		return
	}
	input, ok := bindPayment(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.AddPayment(c.Request.Context(), scope, invoiceID, input)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment recorded",
		slog.Int64("invoice_id", invoiceID), slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Replace a payment
// @Description Replaces a payment of an OPEN invoice. All payments together cannot exceed the invoice amount.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path int true "Payment ID"
// @Param payment body dto.PaymentRequest true "Payment details"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Invoice is VOID or payments would exceed the invoice amount"
// @Security BearerAuth
// @Router /payments/{paymentID} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		return
	}
	input, ok := bindPayment(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), scope, paymentID, input)
	if err != nil {
		respondError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Param paymentID path int true "Payment ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Invoice is VOID"
// @Security BearerAuth
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), scope, paymentID); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

func bindPayment(c *gin.Context) (domain.PaymentInput, bool) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return domain.PaymentInput{}, false
	}
	input, err := req.ToDomain()
	if err != nil {
		respondError(c, apperrors.NewValidationFailedError(err.Error()), "")
		return domain.PaymentInput{}, false
	}
	return input, true
}
