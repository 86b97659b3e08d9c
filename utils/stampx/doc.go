// Package stampx implements timestamp and duration expression parsing and
// ISO 8601 formatting for stampkit.
//
// Package: stampx
// Title: Timestamp Expressions and ISO Rendering
// Description: This package is the core of stampkit. It parses human
//              expressions ("yesterday", "+5min", "2012-09-22 16:34:22",
//              "5 days ago") into unsigned microsecond timestamps, parses
//              duration expressions ("1.5h", "5min 30s") into microsecond
//              magnitudes, and renders timestamps back into ISO-8601 style
//              strings under an orthogonal flag set, plus a compact relative
//              form for columnar output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Duration and timestamp parsers
// - 2025-03-09 v0.1.1: ISO and short formatters
package stampx
