package models

import "fmt"

// SleepRecord is one logged night of sleep. Duration is derived from
// bedtime/wake-time at submission time, not stored form state.
type SleepRecord struct {
	Bedtime  string  `json:"bedtime"`  // HH:MM
	WakeTime string  `json:"wakeTime"` // HH:MM
	Duration float64 `json:"duration"` // hours, one fractional digit
	Quality  string  `json:"quality"`  // poor | fair | good | excellent
	Notes    string  `json:"notes,omitempty"`
	Date     string  `json:"date"` // YYYY-MM-DD
}

var sleepQualities = map[string]bool{
	"poor":      true,
	"fair":      true,
	"good":      true,
	"excellent": true,
}

func NewSleepRecord(bedtime, wakeTime string, duration float64, quality, notes, date string) (SleepRecord, error) {
	if err := validClock(bedtime); err != nil {
		return SleepRecord{}, err
	}
	if err := validClock(wakeTime); err != nil {
		return SleepRecord{}, err
	}
	if duration <= 0 {
		return SleepRecord{}, fmt.Errorf("sleep duration must be positive")
	}
	if !sleepQualities[quality] {
		return SleepRecord{}, fmt.Errorf("unknown sleep quality %q", quality)
	}
	if err := validDate(date); err != nil {
		return SleepRecord{}, err
	}

	return SleepRecord{
		Bedtime:  bedtime,
		WakeTime: wakeTime,
		Duration: duration,
		Quality:  quality,
		Notes:    notes,
		Date:     date,
	}, nil
}
