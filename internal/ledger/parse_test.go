package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-01-15", "2024/01/15", "2024/1/15", "20240115"} {
		got, err := parseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, date(2024, time.January, 15), got, s)
	}

	_, err := parseDate("")
	require.Error(t, err)
	_, err = parseDate("15-01-2024")
	require.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	got, err := parseAmount("1,234,567")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1234567")))

	got, err = parseAmount("¥5,000")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("5000")))

	got, err = parseAmount("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = parseAmount("-300.25")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("-300.25")))

	_, err = parseAmount("abc")
	require.Error(t, err)
}
