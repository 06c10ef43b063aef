package repositories

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/stay"
	"github.com/shopspring/decimal"
)

// InvoiceQuery is the store-level form of an invoice listing or search.
type InvoiceQuery struct {
	ARID               int64
	Outstanding        bool
	ClientID           *int64
	ClientNameContains string
	// Text matches invoice number OR client name, case-insensitively.
	Text        string
	Company     *string
	Window      *stay.Window // Stay overlap; invoices without stay dates never match
	IncludeVoid bool
	AfterID     int64
	Limit       int
}

// InvoiceReader defines read operations for invoices. Every lookup is bounded by arID.
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error)
	// FindInvoiceForUpdate locks the invoice row until the transaction ends.
	FindInvoiceForUpdate(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error)
	// FindInvoiceIDByNumber matches the number exactly.
	FindInvoiceIDByNumber(ctx context.Context, arID int64, invoiceNumber string) (int64, error)
	InvoiceNumberExists(ctx context.Context, arID int64, invoiceNumber string) (bool, error)
	FindInvoiceView(ctx context.Context, arID, invoiceID int64) (*domain.InvoiceView, error)
	// ListInvoiceViews returns matching invoices ordered by ID.
	ListInvoiceViews(ctx context.Context, q InvoiceQuery) ([]domain.InvoiceView, error)
	// ListStayYears returns distinct years of COALESCE(check_in, issue_date), newest first.
	ListStayYears(ctx context.Context, arID int64) ([]int, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice inserts the invoice and sets InvoiceID and CreatedAt.
	SaveInvoice(ctx context.Context, invoice *domain.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error
	UpdateInvoiceAmount(ctx context.Context, invoiceID int64, amount decimal.Decimal) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
