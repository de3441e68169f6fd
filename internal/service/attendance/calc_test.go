package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return parsed
}

func intPtr(v int) *int {
	return &v
}

func TestSplitHours(t *testing.T) {
	standard := decimal.NewFromInt(8)

	tests := []struct {
		name         string
		clockIn      string
		clockOut     string
		breakMinutes *int
		worked       string
		overtime     string
	}{
		{
			name:     "under threshold",
			clockIn:  "2025-01-10T09:00:00Z",
			clockOut: "2025-01-10T15:30:00Z",
			worked:   "6.5",
			overtime: "0",
		},
		{
			name:     "exactly threshold",
			clockIn:  "2025-01-10T09:00:00Z",
			clockOut: "2025-01-10T17:00:00Z",
			worked:   "8",
			overtime: "0",
		},
		{
			name:     "overtime without break",
			clockIn:  "2025-01-10T09:00:00Z",
			clockOut: "2025-01-10T18:30:00Z",
			worked:   "8",
			overtime: "1.5",
		},
		{
			name:         "break pulls total under threshold",
			clockIn:      "2025-01-10T09:00:00Z",
			clockOut:     "2025-01-10T18:00:00Z",
			breakMinutes: intPtr(60),
			worked:       "8",
			overtime:     "0",
		},
		{
			name:         "break during overtime day",
			clockIn:      "2025-01-10T08:00:00Z",
			clockOut:     "2025-01-10T19:00:00Z",
			breakMinutes: intPtr(30),
			worked:       "8",
			overtime:     "2.5",
		},
		{
			name:         "break longer than span clamps to zero",
			clockIn:      "2025-01-10T09:00:00Z",
			clockOut:     "2025-01-10T09:30:00Z",
			breakMinutes: intPtr(120),
			worked:       "0",
			overtime:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worked, overtime := splitHours(ts(t, tt.clockIn), ts(t, tt.clockOut), tt.breakMinutes, standard)
			assert.True(t, worked.Equal(decimal.RequireFromString(tt.worked)),
				"worked = %s, want %s", worked, tt.worked)
			assert.True(t, overtime.Equal(decimal.RequireFromString(tt.overtime)),
				"overtime = %s, want %s", overtime, tt.overtime)
		})
	}
}

func TestSplitHoursCustomThreshold(t *testing.T) {
	standard := decimal.RequireFromString("7.5")

	worked, overtime := splitHours(ts(t, "2025-01-10T09:00:00Z"), ts(t, "2025-01-10T18:00:00Z"), nil, standard)
	assert.True(t, worked.Equal(decimal.RequireFromString("7.5")), "worked = %s", worked)
	assert.True(t, overtime.Equal(decimal.RequireFromString("1.5")), "overtime = %s", overtime)
}

func TestDateOf(t *testing.T) {
	date := dateOf(ts(t, "2025-01-10T18:30:45Z"))
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), date)

	// A timestamp with an offset normalizes to the UTC calendar day.
	offset := time.Date(2025, 1, 11, 1, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), dateOf(offset))
}

func TestAppendNotes(t *testing.T) {
	assert.Equal(t, "morning", appendNotes("", "morning"))
	assert.Equal(t, "morning", appendNotes("morning", ""))
	assert.Equal(t, "morning; evening", appendNotes("morning", "evening"))
	assert.Equal(t, "", appendNotes("", ""))
}
