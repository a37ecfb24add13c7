package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Accepted layouts for dates submitted by clients, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses a date or date-time string in one of the accepted layouts.
// Values without a zone are read in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format %q, expected yyyy-mm-dd or RFC3339", value)
}

// ElapsedWholeDays returns the number of complete 24h periods between start
// and end. Partial days are dropped: 1 day 23 hours counts as 1.
func ElapsedWholeDays(start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must be >= start date")
	}
	return int64(end.Sub(start) / day), nil
}

// CalculatePaymentForDays prices a rental at dayPrice per elapsed whole day.
// An end before start counts as zero days so an open order can always close.
func CalculatePaymentForDays(start, end time.Time, dayPrice decimal.Decimal) (decimal.Decimal, error) {
	if end.Before(start) {
		return decimal.Zero, nil
	}
	days, err := ElapsedWholeDays(start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return dayPrice.Mul(decimal.NewFromInt(days)), nil
}
