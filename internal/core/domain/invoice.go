package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusOpen InvoiceStatus = "OPEN"
	InvoiceStatusVoid InvoiceStatus = "VOID" // Terminal
)

// IsValid reports whether s is a known status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusOpen, InvoiceStatusVoid:
		return true
	default:
		return false
	}
}

// AcceptsMutations reports whether the amount and payments of an invoice in
// this status may still change.
func (s InvoiceStatus) AcceptsMutations() bool {
	switch s {
	case InvoiceStatusOpen:
		return true
	case InvoiceStatusVoid:
		return false
	default:
		return false
	}
}

// ParseInvoiceStatus converts a stored status into an InvoiceStatus.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	s := InvoiceStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown invoice status %q", raw)
	}
	return s, nil
}

// Invoice is a bill for a stay. Amount is fixed at creation from nights and
// rate, and can later only be amended while the invoice is OPEN.
type Invoice struct {
	InvoiceID     int64            `json:"invoiceID"`
	ARID          int64            `json:"arID"`
	ClientID      int64            `json:"clientID"`
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"` // Unique within the A/R entity
	IssueDate     time.Time        `json:"issueDate"`
	DueDate       time.Time        `json:"dueDate"`
	Amount        decimal.Decimal  `json:"amount"`
	Status        InvoiceStatus    `json:"status"`
	CheckIn       *time.Time       `json:"checkIn,omitempty"`
	CheckOut      *time.Time       `json:"checkOut,omitempty"`
	Nights        *int             `json:"nights,omitempty"`
	RatePerNight  *decimal.Decimal `json:"ratePerNight,omitempty"`
	CaseNumber    *string          `json:"caseNumber,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// InvoiceView is an invoice joined with its client and payment totals.
type InvoiceView struct {
	Invoice
	ClientName    string          `json:"clientName"`
	ClientCompany *string         `json:"clientCompany,omitempty"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"` // Amount minus Paid, rounded to cents
}

// InvoiceDetail is an invoice view together with its payments.
type InvoiceDetail struct {
	InvoiceView
	Payments []Payment `json:"payments"`
}

// BalanceSummary is the paid/balance breakdown of one invoice.
type BalanceSummary struct {
	Amount  decimal.Decimal `json:"amount"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateInvoiceInput holds the fields for a new invoice. Amount and nights are derived.
type CreateInvoiceInput struct {
	ClientID      int64
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	CheckIn       time.Time
	CheckOut      time.Time
	RatePerNight  decimal.Decimal
	CaseNumber    *string
}

// InvoiceFilter narrows an invoice listing.
type InvoiceFilter struct {
	Outstanding        bool   // Only invoices with a positive balance
	ClientID           *int64 // Only invoices of this client
	ClientNameContains string // Case-insensitive substring of the client name
	Company            *string
	Year               *int // Stay-overlap window; Month requires Year
	Month              *int
	IncludeVoid        bool
	AfterID            int64 // Keyset cursor; zero starts from the first invoice
	Limit              int   // Zero means no limit
}

// SearchInput is a free-text invoice search.
type SearchInput struct {
	Query   string
	Company *string
	Year    *int
	Month   *int
}

// SearchResult carries ExactMatchID when the query equals an invoice number,
// so callers can navigate straight to that invoice.
type SearchResult struct {
	ExactMatchID *int64        `json:"exactMatchID,omitempty"`
	Invoices     []InvoiceView `json:"invoices"`
}
