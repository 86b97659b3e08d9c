// File: short.go
// Title: Short Relative Formatter
// Description: Implements the compact timestamp rendering used in columnar
//              listings: same-day timestamps show only the clock, same-year
//              timestamps show month and day, and everything else shows the
//              year as well. The day and year tests are cheap quotient
//              comparisons on epoch seconds, not calendar lookups.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation

package stampx

import (
	"fmt"
	"time"

	skerror "github.com/msto63/stampkit/core/error"
)

// ShortFlags adjusts the short rendering.
type ShortFlags int

const (
	// ShortThisYearHHMM adds the clock to same-year renderings.
	ShortThisYearHHMM ShortFlags = 1 << iota
)

const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerYear = 365 * secondsPerDay
)

// TimeIsToday reports whether t falls into the same epoch day as now.
// Days are epoch-second quotients, so the boundary is midnight UTC.
// A zero now means the current time.
func TimeIsToday(t, now Usec) bool {
	if now == 0 {
		now = FromTime(time.Now())
	}
	return t.Seconds()/secondsPerDay == now.Seconds()/secondsPerDay
}

// TimeIsThisYear reports whether t falls into the same epoch year as now,
// using a flat 365-day year. A zero now means the current time.
func TimeIsThisYear(t, now Usec) bool {
	if now == 0 {
		now = FromTime(time.Now())
	}
	return t.Seconds()/secondsPerYear == now.Seconds()/secondsPerYear
}

// FormatShort renders t into buf relative to now and returns the number of
// bytes written. Same-day values render as "HH:MM", same-year values as
// "MonDD" (or "MonDD/HH:MM" with ShortThisYearHHMM), all others as
// "YYYY-MonDD". The rendering uses local time.
func FormatShort(t, now Usec, flags ShortFlags, buf []byte) (int, error) {
	if now == 0 {
		now = FromTime(time.Now())
	}
	tm := time.Unix(t.Seconds(), 0).Local()

	var out string
	switch {
	case TimeIsToday(t, now):
		out = fmt.Sprintf("%02d:%02d", tm.Hour(), tm.Minute())
	case TimeIsThisYear(t, now):
		if flags&ShortThisYearHHMM != 0 {
			out = tm.Format("Jan02/15:04")
		} else {
			out = tm.Format("Jan02")
		}
	default:
		out = tm.Format("2006-Jan02")
	}

	if len(out) > len(buf) {
		return 0, skerror.New("output buffer too small for rendering").
			WithCode(skerror.CodeBufferTooSmall).
			WithOperation("stampx.FormatShort").
			WithDetail("capacity", fmt.Sprintf("%d", len(buf))).
			WithDetail("needed", fmt.Sprintf("%d", len(out)))
	}
	return copy(buf, out), nil
}

// ShortString is the allocating convenience form of FormatShort.
func ShortString(t, now Usec, flags ShortFlags) (string, error) {
	buf := make([]byte, ISOBufSize)
	n, err := FormatShort(t, now, flags, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
