package peselgo

import (
	"errors"
	"fmt"
)

var (
	// ErrBirthDate is returned when the date digits of a number do not form
	// a calendar date.
	ErrBirthDate = errors.New("invalid birth date")

	// ErrControlDigit is returned when the weighted checksum of a number
	// does not match its control digit.
	ErrControlDigit = errors.New("invalid control digit")

	// ErrSyntax is returned by Parse when the input is not a plain run of
	// decimal digits.
	ErrSyntax = errors.New("invalid syntax")
)

// ErrTooShort indicates a candidate with fewer digits than any valid number
// has.
type ErrTooShort struct {
	Digits int
}

func (e *ErrTooShort) Error() string {
	return fmt.Sprintf("too short: expected at least %d digits, got %d", minDigits, e.Digits)
}

// ErrTooLong indicates a candidate with more digits than a number can have.
type ErrTooLong struct {
	Digits int
}

func (e *ErrTooLong) Error() string {
	return fmt.Sprintf("too long: expected at most %d digits, got %d", numDigits, e.Digits)
}
