// File: short_test.go
// Title: Short Formatter Tests
// Description: Tests for the compact relative rendering and the epoch
//              quotient day/year checks it is built on.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial test implementation

package stampx

import (
	"strings"
	"testing"
	"time"

	skerror "github.com/msto63/stampkit/core/error"
)

func TestTimeIsToday(t *testing.T) {
	day := Usec(secondsPerDay) * UsecPerSec

	tests := []struct {
		name string
		t    Usec
		now  Usec
		want bool
	}{
		{"same instant", 100 * day, 100 * day, true},
		{"same day", 100*day + 5*UsecPerHour, 100*day + 20*UsecPerHour, true},
		{"one microsecond before midnight", 100*day - 1, 100 * day, false},
		{"exactly midnight", 100 * day, 100*day - 1, false},
		{"different days", 99 * day, 100 * day, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeIsToday(tt.t, tt.now); got != tt.want {
				t.Errorf("TimeIsToday(%d, %d) = %v, want %v", tt.t, tt.now, got, tt.want)
			}
		})
	}
}

func TestTimeIsThisYear(t *testing.T) {
	year := Usec(secondsPerYear) * UsecPerSec

	tests := []struct {
		name string
		t    Usec
		now  Usec
		want bool
	}{
		{"same year", 10*year + UsecPerDay, 10*year + 300*UsecPerDay, true},
		{"year boundary", 10*year - 1, 10 * year, false},
		{"different years", 9 * year, 10 * year, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeIsThisYear(tt.t, tt.now); got != tt.want {
				t.Errorf("TimeIsThisYear(%d, %d) = %v, want %v", tt.t, tt.now, got, tt.want)
			}
		})
	}
}

func TestFormatShortToday(t *testing.T) {
	now := FromUnix(1348331662)

	got, err := ShortString(now, now, 0)
	if err != nil {
		t.Fatalf("ShortString returned error: %v", err)
	}
	tm := time.Unix(now.Seconds(), 0).Local()
	want := tm.Format("15:04")
	if got != want {
		t.Errorf("ShortString(now, now) = %q, want %q", got, want)
	}
}

func TestFormatShortThisYear(t *testing.T) {
	// Anchor now far enough into its 365-day epoch year that stepping
	// back 30 days stays inside the same quotient.
	year := int64(secondsPerYear)
	nowSec := 42*year + 200*int64(secondsPerDay)
	now := FromUnix(nowSec)
	then := FromUnix(nowSec - 30*int64(secondsPerDay))

	got, err := ShortString(then, now, 0)
	if err != nil {
		t.Fatalf("ShortString returned error: %v", err)
	}
	tm := time.Unix(then.Seconds(), 0).Local()
	if want := tm.Format("Jan02"); got != want {
		t.Errorf("ShortString(then, now) = %q, want %q", got, want)
	}

	got, err = ShortString(then, now, ShortThisYearHHMM)
	if err != nil {
		t.Fatalf("ShortString with HHMM returned error: %v", err)
	}
	if want := tm.Format("Jan02/15:04"); got != want {
		t.Errorf("ShortString(then, now, HHMM) = %q, want %q", got, want)
	}
	if !strings.Contains(got, "/") {
		t.Errorf("ShortString with HHMM = %q, want clock after slash", got)
	}
}

func TestFormatShortOtherYear(t *testing.T) {
	now := FromUnix(1348331662)
	then := now.SubClamped(UsecPerYear + UsecPerDay)

	got, err := ShortString(then, now, 0)
	if err != nil {
		t.Fatalf("ShortString returned error: %v", err)
	}
	tm := time.Unix(then.Seconds(), 0).Local()
	if want := tm.Format("2006-Jan02"); got != want {
		t.Errorf("ShortString(then, now) = %q, want %q", got, want)
	}
}

func TestFormatShortBufferTooSmall(t *testing.T) {
	now := FromUnix(1348331662)

	buf := make([]byte, 2)
	_, err := FormatShort(now, now, 0, buf)
	if err == nil {
		t.Fatal("FormatShort with tiny buffer succeeded, want error")
	}
	if !skerror.HasCode(err, skerror.CodeBufferTooSmall) {
		t.Errorf("error code = %v, want %v", skerror.GetCode(err), skerror.CodeBufferTooSmall)
	}

	exact := make([]byte, 5)
	n, err := FormatShort(now, now, 0, exact)
	if err != nil {
		t.Fatalf("FormatShort with exact buffer returned error: %v", err)
	}
	if n != 5 {
		t.Errorf("FormatShort wrote %d bytes, want 5", n)
	}
}
