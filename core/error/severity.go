// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. Severity levels help callers
//              decide whether a failure is a routine input problem or
//              something that needs attention.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed user input, unknown duration suffix
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: missing configuration file, unreadable configuration value
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: an output buffer too small for the requested rendering
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the process unusable
	// Examples: allocation failure
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeOutOfMemory:
		return SeverityCritical

	// High severity errors
	case CodeInternal, CodeBufferTooSmall:
		return SeverityHigh

	// Medium severity errors
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeNotFound:
		return SeverityMedium

	// Low severity errors (typically user input problems)
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
