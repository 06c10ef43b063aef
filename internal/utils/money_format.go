package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals, e.g. 12.3456 -> "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatOptionalMoney renders nil as an empty string.
func FormatOptionalMoney(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return FormatMoney(*amount)
}
