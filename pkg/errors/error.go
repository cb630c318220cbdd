// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, configuration and credential errors
//   - Series fetch errors (200-299): Economic data provider failures
//   - Persistence errors (300-399): CSV and database write failures
//   - Market data errors (400-499): OHLCV fetching and parsing errors
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidParameter, "invalid parameter value")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeSeriesFetchFailed, "failed to fetch series %s", seriesID)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeWriteFailed, "failed to write series file", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeSeriesFetchFailed) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// EmptySeriesError reports that a provider returned no observations for a
// series. It is a diagnostic, not a failure: batch operations log it and
// continue with the remaining series.
type EmptySeriesError struct {
	Name     string // Display name used for the series
	SeriesID string // Provider series identifier
}

// NewEmptySeriesError creates a new EmptySeriesError.
func NewEmptySeriesError(name, seriesID string) *EmptySeriesError {
	return &EmptySeriesError{
		Name:     name,
		SeriesID: seriesID,
	}
}

// Error implements the error interface.
func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("no data found for %s (series %s)", e.Name, e.SeriesID)
}

// IsEmptySeriesError checks if an error is an EmptySeriesError.
// It uses errors.As to check the error chain.
func IsEmptySeriesError(err error) bool {
	var emptyErr *EmptySeriesError

	return errors.As(err, &emptyErr)
}
