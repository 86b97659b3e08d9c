// File: iso.go
// Title: ISO 8601 Formatter
// Description: Implements flag-driven rendering of timestamps into ISO-8601
//              style strings. Each fragment (date, separator, time,
//              sub-seconds, timezone offset) is gated by its flag bit and
//              written only after checking that it fits the remaining buffer
//              capacity, so callers with fixed-size buffers get a typed
//              failure instead of a truncated result.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation with fragment capacity checks

package stampx

import (
	"fmt"
	"time"

	skerror "github.com/msto63/stampkit/core/error"
)

// ISOFlags selects which fragments an ISO rendering contains and how the
// source timestamp is broken down.
type ISOFlags int

const (
	// ISODate emits the YYYY-MM-DD date fragment.
	ISODate ISOFlags = 1 << iota
	// ISOTime emits the HH:MM:SS time fragment.
	ISOTime
	// ISODotUsec appends the sub-second value as ".NNNNNN".
	ISODotUsec
	// ISOCommaUsec appends the sub-second value as ",NNNNNN".
	// ISODotUsec wins when both bits are set.
	ISOCommaUsec
	// ISOSpace separates date and time with a space instead of 'T'.
	ISOSpace
	// ISOGMTime breaks the timestamp down in UTC instead of local time.
	ISOGMTime
	// ISOTimezone appends the UTC offset, e.g. "+0200".
	ISOTimezone
)

// Common flag combinations.
const (
	ISOTimestamp      = ISODate | ISOTime | ISOTimezone
	ISOTimestampDot   = ISOTimestamp | ISODotUsec
	ISOTimestampComma = ISOTimestamp | ISOCommaUsec
)

// ISOBufSize is the capacity that fits the worst-case rendering,
// "YYYY-MM-DD HH:MM:SS.NNNNNN+HHMM".
const ISOBufSize = 32

// formatISOTime renders the broken-down time into buf fragment by fragment
// and returns the number of bytes written.
func formatISOTime(tm time.Time, usec Usec, flags ISOFlags, buf []byte) (int, error) {
	n := 0

	write := func(frag string) error {
		if len(frag) > len(buf)-n {
			return skerror.New("output buffer too small for rendering").
				WithCode(skerror.CodeBufferTooSmall).
				WithOperation("stampx.FormatISO").
				WithDetail("capacity", fmt.Sprintf("%d", len(buf))).
				WithDetail("needed", fmt.Sprintf("%d", n+len(frag)))
		}
		n += copy(buf[n:], frag)
		return nil
	}

	if flags&ISODate != 0 {
		frag := fmt.Sprintf("%4d-%02d-%02d", tm.Year(), int(tm.Month()), tm.Day())
		if err := write(frag); err != nil {
			return 0, err
		}
	}

	if flags&ISODate != 0 && flags&ISOTime != 0 {
		sep := "T"
		if flags&ISOSpace != 0 {
			sep = " "
		}
		if err := write(sep); err != nil {
			return 0, err
		}
	}

	if flags&ISOTime != 0 {
		frag := fmt.Sprintf("%02d:%02d:%02d", tm.Hour(), tm.Minute(), tm.Second())
		if err := write(frag); err != nil {
			return 0, err
		}
	}

	if flags&ISODotUsec != 0 {
		if err := write(fmt.Sprintf(".%06d", usec)); err != nil {
			return 0, err
		}
	} else if flags&ISOCommaUsec != 0 {
		if err := write(fmt.Sprintf(",%06d", usec)); err != nil {
			return 0, err
		}
	}

	if flags&ISOTimezone != 0 {
		if err := write(tm.Format("-0700")); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// breakDown converts epoch seconds to a calendar time in the zone the flags
// select.
func breakDown(sec int64, flags ISOFlags) time.Time {
	if flags&ISOGMTime != 0 {
		return time.Unix(sec, 0).UTC()
	}
	return time.Unix(sec, 0).Local()
}

// FormatTimevalISO renders a microsecond timestamp into buf. The sub-second
// portion of the timestamp feeds the dot or comma fragment when requested.
func FormatTimevalISO(u Usec, flags ISOFlags, buf []byte) (int, error) {
	return formatISOTime(breakDown(u.Seconds(), flags), u.SubSecond(), flags, buf)
}

// FormatTimeISO renders an already broken-down calendar time into buf with a
// zero sub-second value.
func FormatTimeISO(tm time.Time, flags ISOFlags, buf []byte) (int, error) {
	return formatISOTime(tm, 0, flags, buf)
}

// FormatUnixISO renders bare epoch seconds into buf with a zero sub-second
// value.
func FormatUnixISO(sec int64, flags ISOFlags, buf []byte) (int, error) {
	return formatISOTime(breakDown(sec, flags), 0, flags, buf)
}

// TimestampISO is the allocating convenience form of FormatTimevalISO.
func TimestampISO(u Usec, flags ISOFlags) (string, error) {
	buf := make([]byte, ISOBufSize)
	n, err := FormatTimevalISO(u, flags, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
