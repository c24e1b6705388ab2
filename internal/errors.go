package pipeline_errors

import (
	"errors"
	"fmt"
	"stockpipeline/internal/domain"
)

// FetchError means the quote source could not be reached or answered
// with something other than a quote. The scheduler may retry it.
type FetchError struct {
	Symbol     domain.Symbol
	Source     string
	StatusCode int
	Cause      error
}

func (e FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s quote from %s (status %d): %v", e.Symbol, e.Source, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("failed to fetch %s quote from %s: %v", e.Symbol, e.Source, e.Cause)
}

func (e FetchError) Unwrap() error {
	return e.Cause
}

// PersistError means the quote was fetched but could not be stored.
// Code is the postgres SQLSTATE when the driver reported one.
type PersistError struct {
	Quote domain.Quote
	Code  string
	Cause error
}

func (e PersistError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("failed to persist %s (sqlstate %s): %v", e.Quote.String(), e.Code, e.Cause)
	}
	return fmt.Sprintf("failed to persist %s: %v", e.Quote.String(), e.Cause)
}

func (e PersistError) Unwrap() error {
	return e.Cause
}

func IsRetryable(err error) bool {
	return errors.As(err, &FetchError{}) || errors.As(err, &PersistError{})
}
