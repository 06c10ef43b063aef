package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of invoices. Status is kept as stored and validated when
// mapped to the domain.
type Invoice struct {
	InvoiceID     int64               `db:"invoice_id"`
	ARID          int64               `db:"ar_id"`
	ClientID      int64               `db:"client_id"`
	InvoiceNumber *string             `db:"invoice_number"`
	IssueDate     time.Time           `db:"issue_date"`
	DueDate       time.Time           `db:"due_date"`
	Amount        decimal.Decimal     `db:"amount"`
	Status        string              `db:"status"`
	CheckIn       *time.Time          `db:"check_in"`
	CheckOut      *time.Time          `db:"check_out"`
	Nights        *int                `db:"nights"`
	RatePerNight  decimal.NullDecimal `db:"rate_per_night"`
	CaseNumber    *string             `db:"case_number"`
	CreatedAt     time.Time           `db:"created_at"`
}

// InvoiceRow is an invoice joined with its client and summed payments.
type InvoiceRow struct {
	Invoice
	ClientName    string          `db:"client_name"`
	ClientCompany *string         `db:"client_company"`
	Paid          decimal.Decimal `db:"paid"`
}
