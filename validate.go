package peselgo

import (
	"strconv"
	"time"
)

// Validate reports whether value is a well formed PESEL number.
//
// Three checks run in order and the first failure decides the error: the
// digit count (*ErrTooShort, *ErrTooLong), the embedded date of birth
// (ErrBirthDate) and the control digit (ErrControlDigit). A nil return
// means value passes all three.
//
// Leading zeros of the canonical eleven digit form are not observable on an
// integer, so the digit count is taken from the decimal rendering of value
// and the checksum treats the number as zero padded to eleven digits.
func Validate(value uint64) error {
	s := strconv.FormatUint(value, 10)
	if len(s) < minDigits {
		return &ErrTooShort{Digits: len(s)}
	}
	if len(s) > numDigits {
		return &ErrTooLong{Digits: len(s)}
	}
	if _, ok := DateOfBirth(value); !ok {
		return ErrBirthDate
	}
	if checksum(s)%10 != 0 {
		return ErrControlDigit
	}
	return nil
}

// DateOfBirth extracts the date of birth embedded in value without checking
// the control digit. The boolean reports whether the date digits form a
// real calendar date; impossible dates such as a 31st of April, a 29th of
// February outside leap years, or a month decoded from an out of band
// section return false.
func DateOfBirth(value uint64) (time.Time, bool) {
	year := YearFromSections(yearSectionOf(value), monthSectionOf(value))
	month := time.Month(MonthFromSection(monthSectionOf(value)))
	day := int(daySectionOf(value))

	// time.Date normalizes out of range fields, so an exact round trip of
	// year, month and day proves the date exists.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
