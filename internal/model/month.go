package model

import (
	"fmt"
	"time"
)

// Month is a calendar month in YYYY-MM form. The zero value means
// "unspecified" and lets callers ask for a default.
type Month string

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month(t.Format("2006-01"))
}

// ParseMonth validates a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// IsZero reports whether the month is unspecified.
func (m Month) IsZero() bool {
	return m == ""
}

func (m Month) String() string {
	return string(m)
}
