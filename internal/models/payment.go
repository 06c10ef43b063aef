package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of payments.
type Payment struct {
	PaymentID   int64           `db:"payment_id"`
	InvoiceID   int64           `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Method      string          `db:"method"`
	CheckNumber *string         `db:"check_number"`
	CheckDate   *time.Time      `db:"check_date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// PaymentRow is a payment joined with its invoice number and client.
type PaymentRow struct {
	Payment
	InvoiceNumber *string `db:"invoice_number"`
	ClientName    string  `db:"client_name"`
	ClientCompany *string `db:"client_company"`
}
