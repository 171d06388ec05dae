package utils

import (
	"strings"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// FormatMoney renders an amount for display with the currency symbol, thousands
// separators and exactly two decimals.
// Example: 1234.5 with "$" returns "$1,234.50"
// Example: -20 with "$" returns "-$20.00"
func FormatMoney(amount domain.Money, symbol string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	whole, frac, _ := strings.Cut(amount.String(), ".")
	return sign + symbol + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
