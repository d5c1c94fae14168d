// Package currency converts between integer cents and display strings.
//
// Amounts are persisted as integer cents (dollars x 100) so that typical
// currency inputs round-trip exactly, with no floating point drift.
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCents renders an amount in cents as a dollar string, e.g.
// 66600 -> "$666.00". Negative amounts keep the sign in front of the
// dollar symbol.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

// DollarsToCents converts a dollar amount to cents with half-up rounding
// on fractions of a cent.
func DollarsToCents(dollars float64) int64 {
	if dollars < 0 {
		return -DollarsToCents(-dollars)
	}
	return int64(dollars*100 + 0.5)
}

// CentsToDollars is the read-path inverse of DollarsToCents.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
