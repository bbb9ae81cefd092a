package dateformat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate matches any *InvalidDateError.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownLocale matches any *UnknownLocaleError.
	ErrUnknownLocale = errors.New("unknown locale")
)

// InvalidDateError reports an input that could not be resolved to a
// calendar date.
type InvalidDateError struct {
	Input string // Input as received, rendered with %v
	Err   error  // Underlying parse error, if any
}

func (e *InvalidDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid date %q", e.Input)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidDate) match.
func (e *InvalidDateError) Is(target error) bool { return target == ErrInvalidDate }

// UnknownLocaleError reports a locale with no month-name table.
type UnknownLocaleError struct {
	Locale string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("no month names for locale %q", e.Locale)
}

// Is lets errors.Is(err, ErrUnknownLocale) match.
func (e *UnknownLocaleError) Is(target error) bool { return target == ErrUnknownLocale }
