package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountTerm(t *testing.T) {
	amount, ok := parseAmountTerm("666")
	assert.True(t, ok)
	assert.Equal(t, int64(666), amount)

	_, ok = parseAmountTerm("evil")
	assert.False(t, ok)
	_, ok = parseAmountTerm("6.66")
	assert.False(t, ok)
	_, ok = parseAmountTerm("")
	assert.False(t, ok)
}

func TestParseDateTerm(t *testing.T) {
	date, ok := parseDateTerm("2023-06-27")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 27, 0, 0, 0, 0, time.UTC), date)

	_, ok = parseDateTerm("pending")
	assert.False(t, ok)
	_, ok = parseDateTerm("666")
	assert.False(t, ok)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 6))
	assert.Equal(t, 1, totalPages(1, 6))
	assert.Equal(t, 1, totalPages(6, 6))
	assert.Equal(t, 2, totalPages(7, 6))
	assert.Equal(t, 3, totalPages(13, 6))
}
