package pipeline

import "time"

const (
	// sourceDateLayout is the fixed-width NovaDAX timestamp format.
	sourceDateLayout = "02/01/2006 15:04:05"
	// targetDateLayout is the Koinly timestamp format. Seconds are
	// truncated, not rounded.
	targetDateLayout = "2006-01-02 15:04 UTC"
)

// ConvertDate reformats a NovaDAX timestamp into the Koinly layout.
// Anything that does not parse exactly (wrong delimiters, non-numeric or
// out-of-range fields, missing zero padding) yields the InvalidDate
// sentinel; a bad date never fails the batch. The sentinel itself does not
// parse, so ConvertDate is idempotent on it.
func ConvertDate(s string) string {
	t, err := time.Parse(sourceDateLayout, s)
	if err != nil {
		return InvalidDate
	}
	return t.Format(targetDateLayout)
}
