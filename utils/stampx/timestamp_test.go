// File: timestamp_test.go
// Title: Timestamp Parser Tests
// Description: Tests for "when" expression parsing, pinned to a fixed
//              reference time so the keyword and relative rules are
//              deterministic regardless of when or where the tests run.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation
// - 2025-03-09 v0.1.1: Weekday prefix and clamping coverage

package stampx

import (
	"testing"
	"time"

	skerror "github.com/msto63/stampkit/core/error"
)

// refTime returns the fixed reference moment used throughout these tests,
// 2012-09-22 16:34:22 local time. That date is a Saturday.
func refTime() time.Time {
	return time.Date(2012, time.September, 22, 16, 34, 22, 0, time.Local)
}

func localUsec(year int, month time.Month, day, hour, min, sec int) Usec {
	return FromTime(time.Date(year, month, day, hour, min, sec, 0, time.Local))
}

func TestParseTimestampAtAbsolute(t *testing.T) {
	ref := refTime()

	tests := []struct {
		name  string
		input string
		want  Usec
	}{
		{"full date and time", "2012-09-22 16:34:22", localUsec(2012, 9, 22, 16, 34, 22)},
		{"two digit year", "12-09-22 16:34:22", localUsec(2012, 9, 22, 16, 34, 22)},
		{"no seconds", "2012-09-22 16:34", localUsec(2012, 9, 22, 16, 34, 0)},
		{"two digit year no seconds", "12-09-22 16:34", localUsec(2012, 9, 22, 16, 34, 0)},
		{"date only", "2012-09-22", localUsec(2012, 9, 22, 0, 0, 0)},
		{"two digit year date only", "12-09-22", localUsec(2012, 9, 22, 0, 0, 0)},
		{"time only", "16:34:22", localUsec(2012, 9, 22, 16, 34, 22)},
		{"time only no seconds", "16:34", localUsec(2012, 9, 22, 16, 34, 0)},
		{"compact form zeroes seconds", "20120922163422", localUsec(2012, 9, 22, 16, 34, 0)},
		{"century rollover low", "68-01-02", localUsec(2068, 1, 2, 0, 0, 0)},
		{"century rollover high", "99-12-31", localUsec(1999, 12, 31, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestampAt(tt.input, ref)
			if err != nil {
				t.Fatalf("ParseTimestampAt(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestampAt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestampAtKeywords(t *testing.T) {
	ref := refTime()

	tests := []struct {
		name  string
		input string
		want  Usec
	}{
		{"now", "now", localUsec(2012, 9, 22, 16, 34, 22)},
		{"today", "today", localUsec(2012, 9, 22, 0, 0, 0)},
		{"yesterday", "yesterday", localUsec(2012, 9, 21, 0, 0, 0)},
		{"tomorrow", "tomorrow", localUsec(2012, 9, 23, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestampAt(tt.input, ref)
			if err != nil {
				t.Fatalf("ParseTimestampAt(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestampAt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestampAtRelative(t *testing.T) {
	ref := refTime()
	base := localUsec(2012, 9, 22, 16, 34, 22)

	tests := []struct {
		name  string
		input string
		want  Usec
	}{
		{"plus minutes", "+5min", base + 5*UsecPerMinute},
		{"minus days", "-5days", base - 5*UsecPerDay},
		{"ago", "5 days ago", base - 5*UsecPerDay},
		{"ago with multiple terms", "1h 30min ago", base - UsecPerHour - 30*UsecPerMinute},
		{"plus fraction", "+1.5h", base + UsecPerHour + UsecPerHour/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestampAt(tt.input, ref)
			if err != nil {
				t.Fatalf("ParseTimestampAt(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestampAt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestampAtClampsToEpoch(t *testing.T) {
	ref := time.Unix(100, 0)

	got, err := ParseTimestampAt("-10years", ref)
	if err != nil {
		t.Fatalf("ParseTimestampAt(-10years) returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("ParseTimestampAt(-10years) = %d, want 0", got)
	}

	got, err = ParseTimestampAt("1 year ago", ref)
	if err != nil {
		t.Fatalf("ParseTimestampAt(1 year ago) returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("ParseTimestampAt(1 year ago) = %d, want 0", got)
	}
}

func TestParseTimestampAtWeekdayPrefix(t *testing.T) {
	ref := refTime()
	want := localUsec(2012, 9, 22, 0, 0, 0)

	for _, input := range []string{
		"Saturday 2012-09-22",
		"Sat 2012-09-22",
		"saturday 2012-09-22",
		"SAT 2012-09-22",
	} {
		got, err := ParseTimestampAt(input, ref)
		if err != nil {
			t.Fatalf("ParseTimestampAt(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseTimestampAt(%q) = %d, want %d", input, got, want)
		}
	}

	_, err := ParseTimestampAt("Friday 2012-09-22", ref)
	if err == nil {
		t.Fatal("ParseTimestampAt(Friday 2012-09-22) succeeded, want weekday mismatch")
	}
	if !skerror.HasCode(err, skerror.CodeInvalidFormat) {
		t.Errorf("weekday mismatch error code = %v, want %v",
			skerror.GetCode(err), skerror.CodeInvalidFormat)
	}
}

func TestParseTimestampAtErrors(t *testing.T) {
	ref := refTime()

	tests := []struct {
		name  string
		input string
		code  skerror.Code
	}{
		{"empty", "", skerror.CodeInvalidFormat},
		{"garbage", "not a date", skerror.CodeInvalidFormat},
		{"impossible month", "2012-13-01", skerror.CodeInvalidFormat},
		{"impossible day", "2012-02-30", skerror.CodeInvalidFormat},
		{"trailing text", "2012-09-22 16:34:22 extra", skerror.CodeInvalidFormat},
		{"plus with bad duration", "+abc", skerror.CodeInvalidFormat},
		{"ago with bad duration", "abc ago", skerror.CodeInvalidFormat},
		{"before the epoch", "1960-01-01", skerror.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestampAt(tt.input, ref)
			if err == nil {
				t.Fatalf("ParseTimestampAt(%q) succeeded, want error", tt.input)
			}
			if !skerror.HasCode(err, tt.code) {
				t.Errorf("ParseTimestampAt(%q) error code = %v, want %v",
					tt.input, skerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestParseTimestampUsesCurrentTime(t *testing.T) {
	before := FromTime(time.Now())
	got, err := ParseTimestamp("now")
	if err != nil {
		t.Fatalf("ParseTimestamp(now) returned error: %v", err)
	}
	after := FromTime(time.Now())

	if got < before-before.SubSecond() || got > after {
		t.Errorf("ParseTimestamp(now) = %d, want between %d and %d", got, before, after)
	}
}
