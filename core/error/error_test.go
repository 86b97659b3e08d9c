// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the error module covering error creation, wrapping,
//              codes, severity, and metadata.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with comprehensive test coverage

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap stampkit error",
			err:     New("original stampkit error").WithCode(CodeInvalidFormat),
			message: "wrapper message",
			wantMsg: "wrapper message: original stampkit error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// Test that stampkit error properties are preserved
			if skErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != skErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), skErr.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is(top, middle) = false, want true")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is(top, original) = false, want true")
	}

	if top.RootCause().Error() != "root cause" {
		t.Errorf("RootCause() = %q, want %q", top.RootCause().Error(), "root cause")
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		name         string
		code         Code
		wantSeverity Severity
	}{
		{"invalid format is low", CodeInvalidFormat, SeverityLow},
		{"out of range is low", CodeValueOutOfRange, SeverityLow},
		{"buffer too small is high", CodeBufferTooSmall, SeverityHigh},
		{"out of memory is critical", CodeOutOfMemory, SeverityCritical},
		{"config error is medium", CodeConfigError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test").WithCode(tt.code)

			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}

			if err.Severity() != tt.wantSeverity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.wantSeverity)
			}
		})
	}
}

func TestWithSeverityOverride(t *testing.T) {
	err := New("test").WithSeverity(SeverityCritical).WithCode(CodeInvalidFormat)

	// An explicitly set severity must survive a later WithCode
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test").
		WithDetail("input", "5q").
		WithDetails(map[string]interface{}{
			"position": 1,
			"expected": "unit suffix",
		}).
		WithOperation("stampx.ParseDuration")

	details := err.Details()
	if details["input"] != "5q" {
		t.Errorf("Details()[input] = %v, want %q", details["input"], "5q")
	}
	if details["position"] != 1 {
		t.Errorf("Details()[position] = %v, want 1", details["position"])
	}

	if err.Operation() != "stampx.ParseDuration" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "stampx.ParseDuration")
	}

	// Details() must return a copy
	details["input"] = "mutated"
	if err.Details()["input"] != "5q" {
		t.Error("Details() should return a defensive copy")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	skErr := New("typed").WithCode(CodeBufferTooSmall)
	stdErr := errors.New("plain")

	if !HasCode(skErr, CodeBufferTooSmall) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(skErr, CodeInvalidFormat) {
		t.Error("HasCode() with wrong code = true, want false")
	}
	if HasCode(stdErr, CodeBufferTooSmall) {
		t.Error("HasCode() on standard error = true, want false")
	}

	if GetCode(skErr) != CodeBufferTooSmall {
		t.Errorf("GetCode() = %v, want %v", GetCode(skErr), CodeBufferTooSmall)
	}
	if GetCode(stdErr) != CodeUnknown {
		t.Errorf("GetCode() on standard error = %v, want %v", GetCode(stdErr), CodeUnknown)
	}

	if GetSeverity(stdErr) != SeverityMedium {
		t.Errorf("GetSeverity() on standard error = %v, want %v", GetSeverity(stdErr), SeverityMedium)
	}
}

func TestString(t *testing.T) {
	err := New("something failed").
		WithCode(CodeInvalidFormat).
		WithOperation("stampx.ParseTimestamp")

	s := err.String()
	for _, want := range []string{"something failed", "INVALID_FORMAT", "stampx.ParseTimestamp"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("json test").
		WithCode(CodeValueOutOfRange).
		WithDetail("value", "-1")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error: %v", jsonErr)
	}

	if decoded["message"] != "json test" {
		t.Errorf("message = %v, want %q", decoded["message"], "json test")
	}
	if decoded["code"] != "VALUE_OUT_OF_RANGE" {
		t.Errorf("code = %v, want VALUE_OUT_OF_RANGE", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
}
