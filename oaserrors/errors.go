// Package oaserrors provides structured error types for oas2ir.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish a malformed document from an
// unresolvable reference or a node whose shape the typed layer rejects.
//
// # Error Categories
//
//   - ParseError: YAML/JSON syntax failures and missing document structure
//   - ReferenceError: $ref resolution failures and circular references
//   - ShapeError: a node whose shape cannot be classified where one is required
//   - ResourceLimitError: resource exhaustion (input size)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if err != nil {
//	    var refErr *oaserrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        if refErr.IsCircular {
//	            // Handle circular reference specifically
//	        }
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrShape indicates a node did not have the shape its position requires.
	ErrShape = errors.New("shape error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// location formats " at line L, column C" when the line is known.
func location(line, column int) string {
	if line <= 0 {
		return ""
	}
	s := fmt.Sprintf(" at line %d", line)
	if column > 0 {
		s += fmt.Sprintf(", column %d", column)
	}
	return s
}

// ParseError represents a failure to parse an OpenAPI 2.0 document.
// This includes YAML/JSON deserialization errors and missing top-level structure.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	msg += location(e.Line, e.Column)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure to resolve a $ref.
// This includes missing targets, non-object targets, external references and
// reference cycles.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// RefType indicates the reference type: "local", "file", or "http"
	RefType string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// Line is the line of the $ref value (0 if unknown)
	Line int
	// Column is the column of the $ref value (0 if unknown)
	Column int
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	msg += location(e.Line, e.Column)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// ShapeError reports a node that the typed layer could not classify where a
// specific shape is required, such as a body parameter used as a schema or a
// parameter with no recognizable "in".
type ShapeError struct {
	// Pointer is the JSON pointer of the offending node, when known
	Pointer string
	// Expected names the shape that was required (e.g. "schema", "parameter")
	Expected string
	// Line is the line of the offending node (0 if unknown)
	Line int
	// Column is the column of the offending node (0 if unknown)
	Column int
	// Message describes what was found instead
	Message string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape error"
	if e.Pointer != "" {
		msg += " at " + e.Pointer
	}
	msg += location(e.Line, e.Column)
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "file_size", "input_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
