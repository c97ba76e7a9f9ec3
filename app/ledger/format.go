package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout     = "Jan 2, 2006"
	currencySymbol = "$"
)

// RoundCents rounds half away from zero to two decimal places, which is
// half-up for the positive amounts users enter.
func RoundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatAmount renders an amount as "$1,234.56"; negatives become "-$10.00".
func FormatAmount(amount decimal.Decimal) string {
	rounded := RoundCents(amount)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")
	return sign + currencySymbol + groupThousands(whole) + "." + fraction
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
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
