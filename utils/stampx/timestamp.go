// File: timestamp.go
// Title: Timestamp Expression Parser
// Description: Implements parsing of "when" expressions into microsecond
//              timestamps. An expression is a keyword (now, today, yesterday,
//              tomorrow), a signed relative offset (+5min, -3days, "5 days
//              ago"), or an absolute date/time matched against an ordered
//              list of patterns, optionally prefixed by a weekday name that
//              is validated against the resolved date.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with keyword and pattern rules
// - 2025-03-09 v0.1.1: Weekday prefix validation, pre-epoch range check

package stampx

import (
	"strings"
	"time"

	skerror "github.com/msto63/stampkit/core/error"
	"github.com/msto63/stampkit/utils/stringx"
)

// weekdayNames maps full and abbreviated English weekday names to weekday
// indices. Full names precede their abbreviations so that "Sunday ..." is
// consumed as a whole word before "Sun" gets a chance to match.
var weekdayNames = []struct {
	name string
	nr   time.Weekday
}{
	{"Sunday", time.Sunday},
	{"Sun", time.Sunday},
	{"Monday", time.Monday},
	{"Mon", time.Monday},
	{"Tuesday", time.Tuesday},
	{"Tue", time.Tuesday},
	{"Wednesday", time.Wednesday},
	{"Wed", time.Wednesday},
	{"Thursday", time.Thursday},
	{"Thu", time.Thursday},
	{"Friday", time.Friday},
	{"Fri", time.Friday},
	{"Saturday", time.Saturday},
	{"Sat", time.Saturday},
}

// timestampPattern describes one absolute date/time layout together with the
// field defaults applied after a successful match.
type timestampPattern struct {
	layout   string
	zeroSec  bool // seconds not part of the pattern (or deliberately discarded)
	timeOnly bool // date defaults to the reference day
}

// timestampPatterns is tried in order; the first layout that consumes the
// input exactly wins. Two-digit-year forms precede their four-digit
// counterparts at every granularity. The compact numeric form zeroes the
// seconds it just parsed; that mirrors long-standing behavior of this
// grammar and is kept intentionally.
var timestampPatterns = []timestampPattern{
	{layout: "06-01-02 15:04:05"},
	{layout: "2006-01-02 15:04:05"},
	{layout: "06-01-02 15:04", zeroSec: true},
	{layout: "2006-01-02 15:04", zeroSec: true},
	{layout: "06-01-02"},
	{layout: "2006-01-02"},
	{layout: "15:04:05", timeOnly: true},
	{layout: "15:04", timeOnly: true, zeroSec: true},
	{layout: "20060102150405", zeroSec: true},
}

// resolution carries a resolved calendar moment plus the relative offsets and
// weekday constraint collected while scanning, so that a single finalization
// step can apply them in one place.
type resolution struct {
	tm      time.Time
	plus    Usec
	minus   Usec
	weekday time.Weekday // -1 when unconstrained
}

// ParseTimestamp parses a "when" expression relative to the current wall
// clock in the local timezone. See ParseTimestampAt for the grammar.
func ParseTimestamp(text string) (Usec, error) {
	return ParseTimestampAt(text, time.Now())
}

// ParseTimestampAt parses a "when" expression relative to the supplied
// reference time, in the reference's timezone.
//
// Accepted syntaxes:
//
//	2012-09-22 16:34:22
//	2012-09-22 16:34      (seconds set to 0)
//	2012-09-22            (time set to 00:00:00)
//	16:34:22              (date set to today)
//	16:34                 (date set to today, seconds to 0)
//	now
//	yesterday             (time set to 00:00:00)
//	today                 (time set to 00:00:00)
//	tomorrow              (time set to 00:00:00)
//	+5min
//	-5days
//	5 days ago
//
// Absolute forms also accept a two-digit year and may carry a weekday-name
// prefix ("Saturday 2012-09-22") that must agree with the resolved date.
// Results clamp to zero instead of going before the epoch when a subtraction
// is larger than the reference.
func ParseTimestampAt(text string, now time.Time) (Usec, error) {
	res, err := resolveTimestamp(text, now)
	if err != nil {
		return 0, err
	}
	return finalizeTimestamp(text, res)
}

// resolveTimestamp applies the expression rules in order: keywords first,
// then relative offsets, then the weekday prefix and the absolute patterns.
func resolveTimestamp(text string, now time.Time) (resolution, error) {
	loc := now.Location()
	res := resolution{weekday: -1}

	switch {
	case text == "now":
		res.tm = now
		return res, nil

	case text == "today":
		res.tm = midnight(now)
		return res, nil

	case text == "yesterday":
		res.tm = time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, loc)
		return res, nil

	case text == "tomorrow":
		res.tm = time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
		return res, nil

	case strings.HasPrefix(text, "+"):
		plus, err := ParseDuration(text[1:])
		if err != nil {
			return res, err
		}
		res.tm = now
		res.plus = plus
		return res, nil

	case strings.HasPrefix(text, "-"):
		minus, err := ParseDuration(text[1:])
		if err != nil {
			return res, err
		}
		res.tm = now
		res.minus = minus
		return res, nil

	case strings.HasSuffix(text, " ago"):
		minus, err := ParseDuration(strings.TrimSuffix(text, " ago"))
		if err != nil {
			return res, err
		}
		res.tm = now
		res.minus = minus
		return res, nil
	}

	rest := text
	for _, wd := range weekdayNames {
		if !stringx.HasPrefixIgnoreCase(rest, wd.name) {
			continue
		}
		if len(rest) <= len(wd.name) || rest[len(wd.name)] != ' ' {
			continue
		}
		res.weekday = wd.nr
		rest = rest[len(wd.name)+1:]
		break
	}

	for _, pat := range timestampPatterns {
		parsed, err := time.ParseInLocation(pat.layout, rest, loc)
		if err != nil {
			continue
		}
		sec := parsed.Second()
		if pat.zeroSec {
			sec = 0
		}
		if pat.timeOnly {
			res.tm = time.Date(now.Year(), now.Month(), now.Day(),
				parsed.Hour(), parsed.Minute(), sec, 0, loc)
		} else {
			res.tm = time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), sec, 0, loc)
		}
		return res, nil
	}

	return res, skerror.New("unrecognized timestamp expression").
		WithCode(skerror.CodeInvalidFormat).
		WithOperation("stampx.ParseTimestamp").
		WithDetail("input", text)
}

// finalizeTimestamp converts the resolved calendar moment to a microsecond
// timestamp, validates the weekday constraint, and applies relative offsets
// with the zero clamp.
func finalizeTimestamp(text string, res resolution) (Usec, error) {
	if res.weekday >= 0 && res.tm.Weekday() != res.weekday {
		return 0, skerror.New("weekday does not match the resolved date").
			WithCode(skerror.CodeInvalidFormat).
			WithOperation("stampx.ParseTimestamp").
			WithDetail("input", text).
			WithDetail("expected", res.weekday.String()).
			WithDetail("actual", res.tm.Weekday().String())
	}

	sec := res.tm.Unix()
	if sec < 0 {
		return 0, skerror.New("timestamp before the Unix epoch").
			WithCode(skerror.CodeValueOutOfRange).
			WithOperation("stampx.ParseTimestamp").
			WithDetail("input", text)
	}

	ret := Usec(sec) * UsecPerSec
	ret = ret.Add(res.plus)
	ret = ret.SubClamped(res.minus)
	return ret, nil
}

// midnight returns t with the time-of-day fields zeroed.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
