// Package error provides structured error handling capabilities for stampkit.
//
// Package: error
// Title: stampkit Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, severity levels, and stack
//              traces. It gives the parsing and formatting packages a typed
//              failure taxonomy (invalid format, value out of range, buffer too
//              small, out of memory) that callers can branch on without
//              matching message strings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent failure classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - JSON marshalling for structured logging
//
// Usage:
//   import skerror "github.com/msto63/stampkit/core/error"
//
//   // Create a new error with context
//   err := skerror.New("invalid duration format").
//     WithCode(skerror.CodeInvalidFormat).
//     WithDetail("input", "5q").
//     WithOperation("stampx.ParseDuration")
//
//   // Wrap an existing error with context
//   wrapped := skerror.Wrap(err, "failed to resolve when argument")
//
//   // Check error type and code
//   if skerror.HasCode(err, skerror.CodeInvalidFormat) {
//     // Fall back to a usage message
//   }
package error
