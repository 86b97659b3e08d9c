// File: usec.go
// Title: Microsecond Time Model
// Description: Defines the unsigned microsecond timestamp type shared by the
//              stampkit parsers and formatters, together with the derived
//              per-unit constants and the clamping arithmetic the parsers
//              rely on.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with microsecond constants

package stampx

import "time"

// Usec is an unsigned count of microseconds. Depending on context it is
// either an absolute timestamp (microseconds since the Unix epoch) or a
// duration magnitude with no epoch attached. It is never negative; any
// operation that would move an absolute value below zero clamps to zero
// instead of wrapping.
type Usec uint64

// Microseconds per unit. The month and year constants use the averaged
// civil values (30.44-day month, 365.25-day year) rather than calendar
// arithmetic, matching common duration-table conventions.
const (
	UsecPerUsec   Usec = 1
	UsecPerMsec        = 1000 * UsecPerUsec
	UsecPerSec         = 1000 * UsecPerMsec
	UsecPerMinute      = 60 * UsecPerSec
	UsecPerHour        = 60 * UsecPerMinute
	UsecPerDay         = 24 * UsecPerHour
	UsecPerWeek        = 7 * UsecPerDay
	UsecPerMonth       = 2_629_800 * UsecPerSec
	UsecPerYear        = 31_557_600 * UsecPerSec
)

// FromTime converts an absolute time to a microsecond timestamp.
// Times before the Unix epoch clamp to zero.
func FromTime(t time.Time) Usec {
	sec := t.Unix()
	if sec < 0 {
		return 0
	}
	return Usec(sec)*UsecPerSec + Usec(t.Nanosecond()/1000)
}

// FromUnix converts epoch seconds to a microsecond timestamp.
// Negative values clamp to zero.
func FromUnix(sec int64) Usec {
	if sec < 0 {
		return 0
	}
	return Usec(sec) * UsecPerSec
}

// Time converts the timestamp to a time.Time in the local timezone.
func (u Usec) Time() time.Time {
	return time.Unix(u.Seconds(), int64(u.SubSecond())*1000)
}

// Seconds returns the whole-second portion of the timestamp as epoch seconds.
func (u Usec) Seconds() int64 {
	return int64(u / UsecPerSec)
}

// SubSecond returns the sub-second portion of the timestamp in microseconds
// (0 through 999999).
func (u Usec) SubSecond() Usec {
	return u % UsecPerSec
}

// Add returns u + d.
func (u Usec) Add(d Usec) Usec {
	return u + d
}

// SubClamped returns u - d, clamped to zero when d exceeds u.
func (u Usec) SubClamped(d Usec) Usec {
	if u > d {
		return u - d
	}
	return 0
}
