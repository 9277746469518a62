package models

import (
	"fmt"
	"time"
)

// Dates and clock times travel as plain strings so records compare and
// serialize exactly the way they were entered (calendar-day equality,
// no timezone normalization).
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func validDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}

func validClock(s string) error {
	if _, err := time.Parse(ClockLayout, s); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return nil
}
