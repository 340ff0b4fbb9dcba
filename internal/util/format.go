package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	centsPlaces   = 2
	thousandGroup = 3
)

// FormatMoney renders amount rounded to cents, half away from zero, with the
// given separators, e.g. 12.345,67. Amounts of any size are kept exact.
func FormatMoney(amount decimal.Decimal, thousand, decimalSep string) string {
	fixed := amount.StringFixed(centsPlaces)

	isNegative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	integer, cents, _ := strings.Cut(fixed, ".")

	// for each 3 dígits put the thousand separator
	var b strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%thousandGroup == 0 {
			b.WriteString(thousand)
		}
		b.WriteRune(digit)
	}

	result := b.String() + decimalSep + cents
	if isNegative && strings.Trim(integer+cents, "0") != "" {
		return "-" + result
	}

	return result
}

// FormatAmount renders amount with a currency prefix, e.g. $1,234.50.
func FormatAmount(amount decimal.Decimal, currency, thousand, decimalSep string) string {
	formatted := FormatMoney(amount, thousand, decimalSep)
	if strings.HasPrefix(formatted, "-") {
		return "-" + currency + formatted[1:]
	}
	return currency + formatted
}
