package middleware

import "errors"

// ErrRetryExhausted is returned by the retry middleware once every attempt
// failed. It is joined with the last provider error so both can be matched
// with errors.Is and errors.As.
var ErrRetryExhausted = errors.New("aitutor: all retry attempts exhausted")
