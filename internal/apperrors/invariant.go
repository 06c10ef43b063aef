package apperrors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvariantKind names the ledger rule a rejected mutation would have broken.
type InvariantKind string

const (
	InvariantVoidInvoice          InvariantKind = "void_invoice"
	InvariantBelowPaid            InvariantKind = "below_paid"
	InvariantAlreadyPaid          InvariantKind = "already_paid"
	InvariantExceedsBalance       InvariantKind = "exceeds_balance"
	InvariantExceedsInvoiceAmount InvariantKind = "exceeds_invoice_amount"
)

// InvariantError reports a mutation rejected to keep invoice balances consistent.
// Limit, when set, is the boundary the caller may retry with.
type InvariantError struct {
	Kind    InvariantKind
	Limit   *decimal.Decimal
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

// Is matches another InvariantError of the same kind; an empty Kind matches all.
func (e *InvariantError) Is(target error) bool {
	t, ok := target.(*InvariantError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

var (
	ErrInvariantViolation   = &InvariantError{Message: "invariant violation"}
	ErrVoidInvoice          = &InvariantError{Kind: InvariantVoidInvoice, Message: "Invoice is VOID and cannot be changed"}
	ErrBelowPaid            = &InvariantError{Kind: InvariantBelowPaid, Message: "Amount is below the total already paid"}
	ErrAlreadyPaid          = &InvariantError{Kind: InvariantAlreadyPaid, Message: "Invoice is already fully paid"}
	ErrExceedsBalance       = &InvariantError{Kind: InvariantExceedsBalance, Message: "Payment exceeds invoice balance"}
	ErrExceedsInvoiceAmount = &InvariantError{Kind: InvariantExceedsInvoiceAmount, Message: "Payments would exceed invoice amount"}
)

// NewBelowPaidError rejects an amount lower than what has been paid.
func NewBelowPaidError(paid decimal.Decimal) *InvariantError {
	return &InvariantError{
		Kind:    InvariantBelowPaid,
		Limit:   &paid,
		Message: fmt.Sprintf("Amount cannot be less than already paid (%s)", formatLimit(paid)),
	}
}

// NewExceedsBalanceError rejects a payment larger than the open balance.
func NewExceedsBalanceError(balance decimal.Decimal) *InvariantError {
	return &InvariantError{
		Kind:    InvariantExceedsBalance,
		Limit:   &balance,
		Message: fmt.Sprintf("Payment exceeds balance. Max allowed is %s", formatLimit(balance)),
	}
}

// NewExceedsInvoiceAmountError rejects a payment edit that would overdraw the invoice.
func NewExceedsInvoiceAmountError(maxAllowed decimal.Decimal) *InvariantError {
	return &InvariantError{
		Kind:    InvariantExceedsInvoiceAmount,
		Limit:   &maxAllowed,
		Message: fmt.Sprintf("Payment exceeds invoice amount. Max allowed is %s", formatLimit(maxAllowed)),
	}
}
