package services

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceSvcFacade defines invariant-preserving invoice operations.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, scope domain.Scope, input domain.CreateInvoiceInput) (*domain.Invoice, error)
	// VoidInvoice is terminal and idempotent.
	VoidInvoice(ctx context.Context, scope domain.Scope, invoiceID int64) error
	// AmendAmount rejects VOID invoices and amounts below what has been paid.
	AmendAmount(ctx context.Context, scope domain.Scope, invoiceID int64, newAmount decimal.Decimal) error
	Balance(ctx context.Context, scope domain.Scope, invoiceID int64) (*domain.BalanceSummary, error)
	GetInvoice(ctx context.Context, scope domain.Scope, invoiceID int64) (*domain.InvoiceDetail, error)
}

// PaymentSvcFacade defines payment operations that never let payments exceed
// the invoice amount.
type PaymentSvcFacade interface {
	AddPayment(ctx context.Context, scope domain.Scope, invoiceID int64, input domain.PaymentInput) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, scope domain.Scope, paymentID int64, input domain.PaymentInput) (*domain.Payment, error)
	DeletePayment(ctx context.Context, scope domain.Scope, paymentID int64) error
	// ListPayments also works for VOID invoices.
	ListPayments(ctx context.Context, scope domain.Scope, invoiceID int64) ([]domain.Payment, error)
	ListAllPayments(ctx context.Context, scope domain.Scope) ([]domain.PaymentView, error)
}
