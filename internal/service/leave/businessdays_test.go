package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func TestCountBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single weekday", "2025-01-08", "2025-01-08", 1}, // Wednesday
		{"single saturday", "2025-01-11", "2025-01-11", 0},
		{"single sunday", "2025-01-12", "2025-01-12", 0},
		{"monday through friday", "2025-01-06", "2025-01-10", 5},
		{"full week spans one weekend", "2025-01-06", "2025-01-12", 5},
		{"two full weeks", "2025-01-06", "2025-01-17", 10},
		{"weekend only", "2025-01-11", "2025-01-12", 0},
		{"friday to monday", "2025-01-10", "2025-01-13", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countBusinessDays(day(t, tt.start), day(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}
