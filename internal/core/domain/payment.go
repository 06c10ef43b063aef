package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCheck PaymentMethod = "check"
)

// IsValid reports whether m is a known method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck:
		return true
	default:
		return false
	}
}

// RequiresCheckDetails reports whether a check number and date must accompany the payment.
func (m PaymentMethod) RequiresCheckDetails() bool {
	switch m {
	case PaymentMethodCheck:
		return true
	case PaymentMethodCash:
		return false
	default:
		return false
	}
}

// ParsePaymentMethod accepts a method name in any case.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", fmt.Errorf("payment method must be 'cash' or 'check', got %q", raw)
	}
	return m, nil
}

// Payment is money received against one invoice.
type Payment struct {
	PaymentID   int64           `json:"paymentID"`
	InvoiceID   int64           `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"` // Always positive
	PaymentDate time.Time       `json:"paymentDate"`
	Method      PaymentMethod   `json:"method"`
	CheckNumber *string         `json:"checkNumber,omitempty"`
	CheckDate   *time.Time      `json:"checkDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PaymentView is a payment joined with its invoice number and client, as exported.
type PaymentView struct {
	Payment
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
	ClientName    string  `json:"clientName"`
	ClientCompany *string `json:"clientCompany,omitempty"`
}

// PaymentInput holds the fields for adding or replacing a payment.
type PaymentInput struct {
	Method      string
	Amount      decimal.Decimal
	PaymentDate time.Time
	CheckNumber *string
	CheckDate   *time.Time
}
