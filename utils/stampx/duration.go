// File: duration.go
// Title: Duration Expression Parser
// Description: Implements parsing of human-readable duration expressions such
//              as "5min 30s" or "1.5h" into microsecond magnitudes. The
//              scanner walks the input term by term; each term is a decimal
//              number with an optional fraction followed by a unit suffix
//              resolved against an ordered table.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with ordered suffix table

package stampx

import (
	"strconv"
	"strings"

	skerror "github.com/msto63/stampkit/core/error"
)

const durationWhitespace = " \t\n\r"

// unitEntry maps a duration suffix to its microsecond multiplier.
type unitEntry struct {
	suffix string
	usec   Usec
}

// durationUnits is matched by "first suffix that is a textual prefix of the
// remaining input wins", so the order is load-bearing: "min" must come before
// "m", "month" before "m", and the empty suffix (bare numbers are seconds)
// must come last because it matches everything.
var durationUnits = []unitEntry{
	{"seconds", UsecPerSec},
	{"second", UsecPerSec},
	{"sec", UsecPerSec},
	{"s", UsecPerSec},
	{"minutes", UsecPerMinute},
	{"minute", UsecPerMinute},
	{"min", UsecPerMinute},
	{"months", UsecPerMonth},
	{"month", UsecPerMonth},
	{"msec", UsecPerMsec},
	{"ms", UsecPerMsec},
	{"m", UsecPerMinute},
	{"hours", UsecPerHour},
	{"hour", UsecPerHour},
	{"hr", UsecPerHour},
	{"h", UsecPerHour},
	{"days", UsecPerDay},
	{"day", UsecPerDay},
	{"d", UsecPerDay},
	{"weeks", UsecPerWeek},
	{"week", UsecPerWeek},
	{"w", UsecPerWeek},
	{"years", UsecPerYear},
	{"year", UsecPerYear},
	{"y", UsecPerYear},
	{"usec", UsecPerUsec},
	{"us", UsecPerUsec},
	{"", UsecPerSec},
}

// ParseDuration parses a duration expression into a microsecond magnitude.
//
// An expression is one or more terms, each a non-negative decimal number with
// an optional fractional part, followed by an optional unit suffix (default
// seconds). Terms accumulate: "1h 30min" yields the same value as "90min".
// Fractions are scaled by the unit and truncated to whole microseconds.
//
// Failures are typed: malformed input returns CodeInvalidFormat, a negative
// number or a magnitude outside the representable range returns
// CodeValueOutOfRange.
func ParseDuration(text string) (Usec, error) {
	var total Usec
	something := false
	p := text

	for {
		p = strings.TrimLeft(p, durationWhitespace)
		if p == "" {
			if !something {
				return 0, skerror.New("empty duration expression").
					WithCode(skerror.CodeInvalidFormat).
					WithOperation("stampx.ParseDuration").
					WithDetail("input", text)
			}
			break
		}

		if p[0] == '-' {
			return 0, skerror.New("negative duration not allowed").
				WithCode(skerror.CodeValueOutOfRange).
				WithOperation("stampx.ParseDuration").
				WithDetail("input", text)
		}

		digits := countDigits(p)
		if digits == 0 && (len(p) == 0 || p[0] != '.') {
			return 0, skerror.New("expected a number in duration expression").
				WithCode(skerror.CodeInvalidFormat).
				WithOperation("stampx.ParseDuration").
				WithDetail("input", text)
		}

		var whole uint64
		if digits > 0 {
			var err error
			whole, err = strconv.ParseUint(p[:digits], 10, 63)
			if err != nil {
				return 0, skerror.New("duration value out of range").
					WithCode(skerror.CodeValueOutOfRange).
					WithOperation("stampx.ParseDuration").
					WithDetail("input", text)
			}
			p = p[digits:]
		}

		var frac uint64
		fracDigits := 0
		if strings.HasPrefix(p, ".") {
			rest := p[1:]
			fracDigits = countDigits(rest)
			if fracDigits == 0 {
				return 0, skerror.New("missing digits after decimal point").
					WithCode(skerror.CodeInvalidFormat).
					WithOperation("stampx.ParseDuration").
					WithDetail("input", text)
			}
			var err error
			frac, err = strconv.ParseUint(rest[:fracDigits], 10, 63)
			if err != nil {
				return 0, skerror.New("duration fraction out of range").
					WithCode(skerror.CodeValueOutOfRange).
					WithOperation("stampx.ParseDuration").
					WithDetail("input", text)
			}
			p = rest[fracDigits:]
		}

		p = strings.TrimLeft(p, durationWhitespace)

		matched := false
		for _, unit := range durationUnits {
			if !strings.HasPrefix(p, unit.suffix) {
				continue
			}
			k := Usec(frac) * unit.usec
			for n := fracDigits; n > 0; n-- {
				k /= 10
			}
			total += Usec(whole)*unit.usec + k
			p = p[len(unit.suffix):]
			something = true
			matched = true
			break
		}
		if !matched {
			return 0, skerror.New("unknown duration unit").
				WithCode(skerror.CodeInvalidFormat).
				WithOperation("stampx.ParseDuration").
				WithDetail("input", text)
		}
	}

	return total, nil
}

// countDigits returns the length of the leading run of ASCII digits in s.
func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
