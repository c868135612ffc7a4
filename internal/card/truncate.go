package card

const ellipsis = "..."

// Truncate cuts text to max runes and appends an ellipsis when anything was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max < 0 {
		max = 0
	}
	return string(runes[:max]) + ellipsis
}
