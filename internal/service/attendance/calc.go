package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// splitHours decomposes the elapsed time between clockIn and clockOut, minus
// the break, into regular and overtime hours around the standard daily
// threshold. A break longer than the worked span clamps the result to zero
// rather than going negative.
func splitHours(clockIn, clockOut time.Time, breakMinutes *int, standardDaily decimal.Decimal) (worked, overtime decimal.Decimal) {
	total := clockOut.Sub(clockIn)
	if breakMinutes != nil {
		total -= time.Duration(*breakMinutes) * time.Minute
	}

	hours := decimal.NewFromInt(int64(total / time.Second)).Div(decimal.NewFromInt(3600))

	if hours.LessThanOrEqual(standardDaily) {
		worked = decimal.Max(decimal.Zero, hours)
		overtime = decimal.Zero
	} else {
		worked = standardDaily
		overtime = hours.Sub(standardDaily)
	}

	return worked.Round(2), overtime.Round(2)
}

// dateOf strips the time-of-day component, normalizing to UTC midnight.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// appendNotes joins clock-in and clock-out notes with a "; " separator.
// An empty side produces no separator.
func appendNotes(existing, added string) string {
	if added == "" {
		return existing
	}
	if existing == "" {
		return added
	}
	return existing + "; " + added
}
