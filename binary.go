package peselgo

import "time"

// Bit widths of the packed sections. Each section is followed by a five bit
// gap, so every shift is the sum of the widths and gaps below it. The month
// field must hold the century offset as well as the month; sections reach
// 92 and need seven bits.
const (
	controlBits = 4
	ordinalBits = 14
	dayBits     = 7
	monthBits   = 7
	yearBits    = 7

	sectionGap = 5

	controlShift = 0
	ordinalShift = controlShift + controlBits + sectionGap
	dayShift     = ordinalShift + ordinalBits + sectionGap
	monthShift   = dayShift + dayBits + sectionGap
	yearShift    = monthShift + monthBits + sectionGap
)

// Binary is a PESEL number with its five sections packed into a single
// uint64, year in the highest field and control digit in the lowest.
//
// The zero value is not a valid number; use NewBinary or convert a Decimal.
type Binary struct {
	packed uint64
}

var _ Pesel = Binary{}

// NewBinary validates value and returns it in packed form. The error is one
// of *ErrTooShort, *ErrTooLong, ErrBirthDate or ErrControlDigit.
func NewBinary(value uint64) (Binary, error) {
	if err := Validate(value); err != nil {
		return Binary{}, err
	}
	return Binary{packed: pack(value)}, nil
}

// pack splits value into its sections and ors them into a machine word.
func pack(value uint64) uint64 {
	return uint64(yearSectionOf(value))<<yearShift |
		uint64(monthSectionOf(value))<<monthShift |
		uint64(daySectionOf(value))<<dayShift |
		uint64(ordinalSectionOf(value))<<ordinalShift |
		uint64(controlSectionOf(value))<<controlShift
}

// Packed returns the raw packed word.
func (b Binary) Packed() uint64 { return b.packed }

// Uint64 returns the canonical decimal value of the number.
func (b Binary) Uint64() uint64 {
	return uint64(b.YearSection())*yearPlace +
		uint64(b.MonthSection())*monthPlace +
		uint64(b.DaySection())*dayPlace +
		uint64(b.OrdinalSection())*ordinalPlace +
		uint64(b.ControlSection())
}

// YearSection returns digits 1-2, the year of birth within its century.
func (b Binary) YearSection() uint8 { return uint8(b.packed >> yearShift & (1<<yearBits - 1)) }

// MonthSection returns digits 3-4, the month of birth with its century
// offset.
func (b Binary) MonthSection() uint8 { return uint8(b.packed >> monthShift & (1<<monthBits - 1)) }

// DaySection returns digits 5-6, the day of birth.
func (b Binary) DaySection() uint8 { return uint8(b.packed >> dayShift & (1<<dayBits - 1)) }

// OrdinalSection returns digits 7-10, the serial number.
func (b Binary) OrdinalSection() uint16 {
	return uint16(b.packed >> ordinalShift & (1<<ordinalBits - 1))
}

// ControlSection returns digit 11, the control digit.
func (b Binary) ControlSection() uint8 { return uint8(b.packed >> controlShift & (1<<controlBits - 1)) }

// Year returns the four digit year of birth.
func (b Binary) Year() int { return YearFromSections(b.YearSection(), b.MonthSection()) }

// Month returns the month of birth.
func (b Binary) Month() time.Month { return time.Month(MonthFromSection(b.MonthSection())) }

// Day returns the day of the month of birth.
func (b Binary) Day() int { return int(b.DaySection()) }

// DateOfBirth returns the date of birth at midnight UTC.
func (b Binary) DateOfBirth() time.Time {
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
}

// Sex returns the sex encoded in the ordinal section.
func (b Binary) Sex() Sex { return sexOf(b.OrdinalSection()) }

// Decimal returns the same number in its decimal representation. The
// conversion never fails.
func (b Binary) Decimal() Decimal { return Decimal{value: b.Uint64()} }
