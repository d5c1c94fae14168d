package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$6.66", FormatCents(666))
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$1,000.00", FormatCents(100000))
	assert.Equal(t, "$1,234,567.89", FormatCents(123456789))
	assert.Equal(t, "-$6.66", FormatCents(-666))
}

func TestDollarsToCentsRoundTrip(t *testing.T) {
	// typical currency inputs must not drift
	for _, dollars := range []float64{0.01, 0.1, 6.66, 19.99, 100, 666, 8945.55} {
		cents := DollarsToCents(dollars)
		assert.Equal(t, dollars, CentsToDollars(cents), "round trip of %v", dollars)
	}
}

func TestDollarsToCentsRounding(t *testing.T) {
	assert.Equal(t, int64(1234), DollarsToCents(12.34))
	// 19.99 is not exactly representable in binary floating point
	assert.Equal(t, int64(1999), DollarsToCents(19.99))
	assert.Equal(t, int64(-1999), DollarsToCents(-19.99))
}
