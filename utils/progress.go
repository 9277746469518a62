package utils

// CalculateProgress returns how far current is toward target as a
// percentage, clamped to [0, 100]. A zero target always reads 0 so an
// unset goal never shows as complete.
func CalculateProgress(current, target float64) float64 {
	if target == 0 {
		return 0
	}
	p := (current / target) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ProgressStatus buckets a progress percentage for display.
func ProgressStatus(percentage float64) string {
	switch {
	case percentage >= 100:
		return "exceeded"
	case percentage >= 80:
		return "on-track"
	default:
		return "behind"
	}
}
