package leave

import "time"

// countBusinessDays walks every calendar day in [startDate, endDate]
// inclusive and counts weekdays. No holiday calendar; Monday through Friday
// count as workable everywhere.
func countBusinessDays(startDate, endDate time.Time) int {
	count := 0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		count++
	}
	return count
}
