// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across stampkit. These codes enable structured
//              error handling in callers (typically command-line tools) that
//              need to translate parser and formatter failures into
//              user-facing messages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with stampkit error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for stampkit
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Parsing and validation
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Resource exhaustion
	CodeOutOfMemory    Code = "OUT_OF_MEMORY"
	CodeBufferTooSmall Code = "BUFFER_TOO_SMALL"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeValidationFailed,
		CodeOutOfMemory, CodeBufferTooSmall,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeValidationFailed:
		return "validation"
	case CodeOutOfMemory, CodeBufferTooSmall:
		return "resource"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeNotFound:
		return "lookup"
	default:
		return "generic"
	}
}

// IsRecoverable returns true if a caller can reasonably recover from the
// error, for example by falling back to a usage message
func (c Code) IsRecoverable() bool {
	switch c {
	case CodeInternal, CodeOutOfMemory:
		return false
	default:
		return true
	}
}
