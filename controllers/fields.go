package controllers

const msgFillRequired = "Please fill in all required fields."

// requiredFields returns the names of fields whose presence check failed,
// in a stable order, so the page can flag the offending inputs.
func requiredFields(checks map[string]bool) []string {
	var missing []string
	for _, name := range fieldOrder {
		present, tracked := checks[name]
		if tracked && !present {
			missing = append(missing, name)
		}
	}
	return missing
}

// fieldOrder covers every required field name across the four forms.
var fieldOrder = []string{
	"type", "name", "duration", "intensity",
	"meal", "food", "quantity", "unit", "calories",
	"bedtime", "wakeTime", "quality", "date",
	"target",
}
