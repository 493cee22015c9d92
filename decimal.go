package peselgo

import "time"

// Decimal places of the sections above the control digit, least significant
// first: ordinal, day, month, year.
const (
	ordinalPlace = 10
	dayPlace     = 100_000
	monthPlace   = 10_000_000
	yearPlace    = 1_000_000_000
)

func yearSectionOf(value uint64) uint8     { return uint8(value / yearPlace % 100) }
func monthSectionOf(value uint64) uint8    { return uint8(value / monthPlace % 100) }
func daySectionOf(value uint64) uint8      { return uint8(value / dayPlace % 100) }
func ordinalSectionOf(value uint64) uint16 { return uint16(value / ordinalPlace % 10_000) }
func controlSectionOf(value uint64) uint8  { return uint8(value % 10) }

// Decimal is a PESEL number held as its literal decimal value. Sections are
// extracted by place value on demand.
//
// The zero value is not a valid number; use NewDecimal or Parse.
type Decimal struct {
	value uint64
}

var _ Pesel = Decimal{}

// NewDecimal validates value and returns it as a Decimal. The error is one
// of *ErrTooShort, *ErrTooLong, ErrBirthDate or ErrControlDigit.
func NewDecimal(value uint64) (Decimal, error) {
	if err := Validate(value); err != nil {
		return Decimal{}, err
	}
	return Decimal{value: value}, nil
}

// Uint64 returns the canonical decimal value of the number.
func (d Decimal) Uint64() uint64 { return d.value }

// YearSection returns digits 1-2, the year of birth within its century.
func (d Decimal) YearSection() uint8 { return yearSectionOf(d.value) }

// MonthSection returns digits 3-4, the month of birth with its century
// offset.
func (d Decimal) MonthSection() uint8 { return monthSectionOf(d.value) }

// DaySection returns digits 5-6, the day of birth.
func (d Decimal) DaySection() uint8 { return daySectionOf(d.value) }

// OrdinalSection returns digits 7-10, the serial number.
func (d Decimal) OrdinalSection() uint16 { return ordinalSectionOf(d.value) }

// ControlSection returns digit 11, the control digit.
func (d Decimal) ControlSection() uint8 { return controlSectionOf(d.value) }

// Year returns the four digit year of birth.
func (d Decimal) Year() int { return YearFromSections(d.YearSection(), d.MonthSection()) }

// Month returns the month of birth.
func (d Decimal) Month() time.Month { return time.Month(MonthFromSection(d.MonthSection())) }

// Day returns the day of the month of birth.
func (d Decimal) Day() int { return int(d.DaySection()) }

// DateOfBirth returns the date of birth at midnight UTC.
func (d Decimal) DateOfBirth() time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Sex returns the sex encoded in the ordinal section.
func (d Decimal) Sex() Sex { return sexOf(d.OrdinalSection()) }

// Binary returns the same number with its sections packed into a machine
// word. The conversion never fails.
func (d Decimal) Binary() Binary { return Binary{packed: pack(d.value)} }
