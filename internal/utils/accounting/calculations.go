package accounting

import (
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance absorbs rounding noise when comparing payment totals to invoice amounts.
var Tolerance = decimal.New(1, -9)

// centPlaces is the precision of invoice amounts and balances.
const centPlaces = 2

// InvoiceAmount is nights times the nightly rate, rounded to cents.
func InvoiceAmount(nights int, ratePerNight decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(nights)).Mul(ratePerNight).Round(centPlaces)
}

// Balance is what remains to be paid, rounded to cents.
func Balance(amount, paid decimal.Decimal) decimal.Decimal {
	return amount.Sub(paid).Round(centPlaces)
}

// HasCentPrecision reports whether d has at most two decimal places.
func HasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(centPlaces))
}

// Exceeds reports whether value is greater than limit beyond Tolerance.
func Exceeds(value, limit decimal.Decimal) bool {
	return value.GreaterThan(limit.Add(Tolerance))
}

// FallsBelow reports whether value is less than floor beyond Tolerance.
func FallsBelow(value, floor decimal.Decimal) bool {
	return value.LessThan(floor.Sub(Tolerance))
}

// Summarize builds the amount/paid/balance breakdown for an invoice.
func Summarize(amount, paid decimal.Decimal) domain.BalanceSummary {
	return domain.BalanceSummary{
		Amount:  amount,
		Paid:    paid,
		Balance: Balance(amount, paid),
	}
}

// MaxPaymentAllowed is the largest whole-cent amount a payment may have when
// the other payments on the invoice already total others. It is never negative.
func MaxPaymentAllowed(amount, others decimal.Decimal) decimal.Decimal {
	limit := amount.Sub(others).Truncate(centPlaces)
	if limit.IsNegative() {
		return decimal.Zero
	}
	return limit
}
