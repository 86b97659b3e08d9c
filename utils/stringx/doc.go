// Package stringx implements string utility functions for stampkit.
//
// Package: stringx
// Title: Extended String Utilities
// Description: This package provides the string helpers shared by the
//              stampkit parsing and configuration packages: blank checks for
//              validation and case-insensitive prefix matching for weekday
//              name recognition. It deliberately stays small; anything the
//              standard library already does well is not duplicated here.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation
package stringx
