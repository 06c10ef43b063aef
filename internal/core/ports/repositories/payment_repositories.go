package repositories

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payments.
type PaymentReader interface {
	// FindPaymentByID only finds payments whose invoice belongs to arID.
	FindPaymentByID(ctx context.Context, arID, paymentID int64) (*domain.Payment, error)
	// SumPayments totals an invoice's payments, leaving out excludePaymentID when non-zero.
	SumPayments(ctx context.Context, invoiceID, excludePaymentID int64) (decimal.Decimal, error)
	// ListPaymentsByInvoice orders by payment date, then ID.
	ListPaymentsByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
	// ListPaymentViews returns every payment of the entity ordered by payment date, then ID.
	ListPaymentViews(ctx context.Context, arID int64) ([]domain.PaymentView, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	// SavePayment inserts the payment and sets PaymentID and CreatedAt.
	SavePayment(ctx context.Context, payment *domain.Payment) error
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
