package tool

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed tool outcome.
type ErrorKind string

const (
	KindUnsafeExpression ErrorKind = "unsafe_expression"
	KindDivisionByZero   ErrorKind = "division_by_zero"
	KindMathDomain       ErrorKind = "math_domain_error"
	KindNonFinite        ErrorKind = "non_finite_result"
	KindToolNotFound     ErrorKind = "tool_not_found"
	KindInvalidArguments ErrorKind = "invalid_arguments"
	KindNotFound         ErrorKind = "not_found"
	KindExecutionFailed  ErrorKind = "execution_failed"
)

// Outcome is the result of a tool invocation. Exactly one of Value or
// Kind/Message is meaningful, selected by Success; build it with [Success]
// or [Failure] only.
type Outcome struct {
	Success  bool           `json:"success"`
	Value    any            `json:"value,omitempty"`
	Kind     ErrorKind      `json:"error_kind,omitempty"`
	Message  string         `json:"error_message,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Success wraps a tool value.
func Success(value any, metadata map[string]any) Outcome {
	return Outcome{Success: true, Value: value, Metadata: metadata}
}

// Failure builds a failed outcome of the given kind.
func Failure(kind ErrorKind, message string) Outcome {
	return Outcome{Kind: kind, Message: message}
}

// FailureWithMetadata is Failure carrying extra context, e.g. lookup suggestions.
func FailureWithMetadata(kind ErrorKind, message string, metadata map[string]any) Outcome {
	return Outcome{Kind: kind, Message: message, Metadata: metadata}
}

// Error is returned by tool functions to fail with a specific kind. Any
// other error is reported as execution_failed.
type Error struct {
	Kind     ErrorKind
	Message  string
	Metadata map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError is a shorthand for &Error{Kind: kind, Message: message}.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the ErrorKind carried by err, or execution_failed.
func KindOf(err error) ErrorKind {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr.Kind
	}
	return KindExecutionFailed
}

func failureFromError(err error) Outcome {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return FailureWithMetadata(toolErr.Kind, toolErr.Message, toolErr.Metadata)
	}
	return Failure(KindExecutionFailed, err.Error())
}
