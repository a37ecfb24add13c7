package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Date only", func(t *testing.T) {
		d, err := ParseDate("2024-01-15", time.UTC)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Date and time", func(t *testing.T) {
		d, err := ParseDate("2024-01-15T10:30", time.UTC)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), d)
	})

	t.Run("RFC3339", func(t *testing.T) {
		d, err := ParseDate("2024-01-15T10:30:00+02:00", time.UTC)
		assert.NoError(t, err)
		assert.True(t, d.Equal(time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)))
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("15/01/2024", time.UTC)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseDate("  ", time.UTC)
		assert.Error(t, err)
	})
}

func TestElapsedWholeDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int64
	}{
		{"Same instant", start, 0},
		{"23 hours", start.Add(23 * time.Hour), 0},
		{"Exactly one day", start.Add(24 * time.Hour), 1},
		{"One day 23 hours", start.Add(47 * time.Hour), 1},
		{"Two days ten hours", time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), 2},
		{"Across leap day", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ElapsedWholeDays(start, tt.end)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}

	t.Run("End before start", func(t *testing.T) {
		_, err := ElapsedWholeDays(start, start.Add(-time.Hour))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "end date must be >= start date")
	})
}

func TestCalculatePaymentForDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	price, err := CalculatePaymentForDays(start, end, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "200", price.String())

	price, err = CalculatePaymentForDays(start, end, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	assert.Equal(t, "25", price.String())

	price, err = CalculatePaymentForDays(start, start.Add(5*time.Hour), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, price.IsZero())

	price, err = CalculatePaymentForDays(start, start.Add(-2*time.Hour), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, price.IsZero())
}
