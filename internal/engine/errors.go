package engine

import (
	"context"
	"errors"
)

// ExecutionError reports a failure of rendered SQL against the store, such
// as an unknown table or column. The translator has no visibility into the
// schema, so these are only detected here.
type ExecutionError struct {
	// Code identifies the error category.
	Code ExecutionErrorCode

	// Message is the store's error text, unmodified.
	Message string

	// SQL is the statement that failed.
	SQL string
}

// ExecutionErrorCode categorizes execution errors.
type ExecutionErrorCode string

const (
	// ErrCodeExecutionFailed indicates the store rejected or failed the statement.
	ErrCodeExecutionFailed ExecutionErrorCode = "EXECUTION_FAILED"

	// ErrCodeCanceled indicates the context ended before the statement finished.
	ErrCodeCanceled ExecutionErrorCode = "CANCELED"
)

// Error returns the store's message so it can be shown to the user as is.
func (e *ExecutionError) Error() string {
	return e.Message
}

// IsExecutionError returns true if err is, or wraps, an *ExecutionError.
func IsExecutionError(err error) bool {
	var ee *ExecutionError
	return errors.As(err, &ee)
}

// newExecutionError wraps a store error. Context cancellation is reported
// with ErrCodeCanceled.
func newExecutionError(sql string, err error) *ExecutionError {
	code := ErrCodeExecutionFailed
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		code = ErrCodeCanceled
	}
	return &ExecutionError{
		Code:    code,
		Message: err.Error(),
		SQL:     sql,
	}
}
