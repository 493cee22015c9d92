package peselgo

import "time"

// Sex is the sex a number assigns to its holder.
type Sex uint8

const (
	// Male is encoded by an odd last digit of the ordinal section.
	Male Sex = iota
	// Female is encoded by an even last digit of the ordinal section.
	Female
)

// String implements fmt.Stringer.
func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "invalid"
	}
}

// Pesel is the common interface of the two number representations.
//
// A PESEL splits into five sections, written here in digit order: year,
// month with century offset, day, ordinal and control digit. The section
// accessors return the raw digit groups; Year, Month, Day, DateOfBirth and
// Sex decode the personal data carried by them. Implementations are
// immutable values and always hold a validated number.
type Pesel interface {
	// Uint64 returns the canonical decimal value of the number.
	Uint64() uint64

	// YearSection returns digits 1-2, the year of birth within its century.
	YearSection() uint8
	// MonthSection returns digits 3-4, the month of birth with its century
	// offset.
	MonthSection() uint8
	// DaySection returns digits 5-6, the day of birth.
	DaySection() uint8
	// OrdinalSection returns digits 7-10, the serial number.
	OrdinalSection() uint16
	// ControlSection returns digit 11, the control digit.
	ControlSection() uint8

	// Year returns the four digit year of birth.
	Year() int
	// Month returns the month of birth.
	Month() time.Month
	// Day returns the day of the month of birth.
	Day() int
	// DateOfBirth returns the date of birth at midnight UTC.
	DateOfBirth() time.Time
	// Sex returns the sex encoded in the ordinal section.
	Sex() Sex
}

// Equal reports whether a and b name the same number, regardless of their
// representations.
func Equal(a, b Pesel) bool {
	return a.Uint64() == b.Uint64()
}

// sexOf decodes the sex marker, the parity of the last ordinal digit.
func sexOf(ordinal uint16) Sex {
	if ordinal%2 == 0 {
		return Female
	}
	return Male
}
