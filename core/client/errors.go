package client

import (
	"context"
	"errors"
)

// ErrEmptyResponse is wrapped by a ServiceError when the provider answered
// without usable text, e.g. because the prompt was blocked.
var ErrEmptyResponse = errors.New("empty response from text generation service")

// ServiceError reports a failed text generation. Timeout is set when the
// call ran past its deadline.
type ServiceError struct {
	Err     error
	Timeout bool
}

func newServiceError(err error) *ServiceError {
	return &ServiceError{Err: err, Timeout: errors.Is(err, context.DeadlineExceeded)}
}

func (e *ServiceError) Error() string {
	if e.Timeout {
		return "AI service timeout: " + e.Err.Error()
	}
	return "AI service error: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
