package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in/clock-out state machine
	ErrAlreadyClockedIn  = errors.New("already clocked in for this date")
	ErrNotClockedIn      = errors.New("no clock-in recorded for this date")
	ErrAlreadyClockedOut = errors.New("already clocked out for this date")

	// General errors
	ErrAttendanceExists   = errors.New("attendance record already exists for this employee and date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
