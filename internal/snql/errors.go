package snql

import "errors"

// SyntaxErrorMessage is the message of every *SyntaxError.
const SyntaxErrorMessage = "Invalid SNQL syntax"

// SyntaxError reports that a query lacks the mandatory
// "get <fields> from <table>" anchor.
//
// It is returned as a value so callers can tell "could not translate" apart
// from "translated but failed to execute".
type SyntaxError struct {
	// Query is the raw input that failed to translate.
	Query string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return SyntaxErrorMessage
}

// IsSyntaxError returns true if err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
