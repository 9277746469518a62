package utils

import (
	"fmt"
	"math"
	"time"
)

// SleepDuration returns the hours slept between bedtime and wake time,
// both HH:MM. A wake time at or before bedtime rolls over to the next
// day (overnight sleep). The result is rounded to one fractional digit.
func SleepDuration(bedtime, wakeTime string) (float64, error) {
	b, err := time.Parse("15:04", bedtime)
	if err != nil {
		return 0, fmt.Errorf("invalid bedtime %q, expected HH:MM", bedtime)
	}
	w, err := time.Parse("15:04", wakeTime)
	if err != nil {
		return 0, fmt.Errorf("invalid wake time %q, expected HH:MM", wakeTime)
	}

	if !w.After(b) {
		w = w.Add(24 * time.Hour)
	}

	hours := w.Sub(b).Hours()
	return math.Round(hours*10) / 10, nil
}
