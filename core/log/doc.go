// Package log implements structured logging for stampkit.
//
// Package: log
// Title: Structured Logging
// Description: This package provides leveled, structured logging with
//              multiple output formats (JSON, text, console, logfmt) and
//              tight integration with the stampkit error system: errors
//              carrying codes and severities are logged with their context
//              at a level derived from the severity.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Usage:
//
//	logger := log.New().WithName("stampkit").WithLevel(log.LevelDebug)
//	logger.Info("parsed timestamp", log.String("input", "yesterday"))
//	logger.LogError(err)
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation
package log
