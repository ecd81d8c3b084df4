package spc

import (
	"fmt"
	"time"
)

// composeDateTime validates the civil time decoded from a header and returns
// it as a UTC-naive time.Time (the format records no timezone). A month of
// zero is tolerated and read as January: files in the wild carry 0 despite
// the documented 1-12 range. Any other out-of-range component is fatal.
func composeDateTime(year int, month, day, hour, minute int) (time.Time, error) {
	if month == 0 {
		month = 1
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDateTime, month)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (day 32 becomes the next
	// month); a round-trip mismatch means the stored fields were not a real
	// calendar time.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d",
			ErrInvalidDateTime, year, month, day, hour, minute)
	}
	return t, nil
}

// unpackNewDate splits the new-generation packed date word. From the least
// significant bit upward: 6 bits minute, 5 bits hour, 5 bits day, 4 bits
// month, 12 bits year.
func unpackNewDate(packed uint32) (year, month, day, hour, minute int) {
	minute = int(packed & 0x3f)
	hour = int(packed >> 6 & 0x1f)
	day = int(packed >> 11 & 0x1f)
	month = int(packed >> 16 & 0x0f)
	year = int(packed >> 20)
	return
}
