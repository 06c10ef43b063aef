package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/export"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	queryService   portssvc.QuerySvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// RegisterExportRoutes registers the CSV downloads of the selected A/R entity.
func RegisterExportRoutes(rg *gin.RouterGroup, queryService portssvc.QuerySvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := &exportHandler{queryService: queryService, paymentService: paymentService}

	exports := rg.Group("/export")
	{
		exports.GET("/invoices.csv", h.exportInvoices)
		exports.GET("/payments.csv", h.exportPayments)
	}
}

func startCSV(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
}

// exportInvoices godoc
// @Summary Export invoices
// @Description Every invoice of the selected A/R entity, VOID included, as CSV.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /export/invoices.csv [get]
func (h *exportHandler) exportInvoices(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	invoices, err := h.queryService.ListInvoices(c.Request.Context(), scope, domain.InvoiceFilter{IncludeVoid: true})
	if err != nil {
		respondError(c, err, "Failed to export invoices")
		return
	}

	startCSV(c, "invoices.csv")
	if err := export.WriteInvoicesCSV(c.Writer, invoices); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write invoice export", slog.String("error", err.Error()))
	}
}

// exportPayments godoc
// @Summary Export payments
// @Description Every payment of the selected A/R entity with its invoice number and client, as CSV.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /export/payments.csv [get]
func (h *exportHandler) exportPayments(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListAllPayments(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err, "Failed to export payments")
		return
	}

	startCSV(c, "payments.csv")
	if err := export.WritePaymentsCSV(c.Writer, payments); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write payment export", slog.String("error", err.Error()))
	}
}
