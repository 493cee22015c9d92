package peselgo

import "strings"

// Parse converts the decimal text of a PESEL number into a Decimal.
//
// The input must be a non empty run of ASCII digits; anything else fails
// with ErrSyntax. Leading zeros carry no information, so "02290486168" and
// "2290486168" name the same number. After trimming them the digits are
// validated exactly like an integer passed to NewDecimal.
func Parse(s string) (Decimal, error) {
	if s == "" {
		return Decimal{}, ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Decimal{}, ErrSyntax
		}
	}

	digits := strings.TrimLeft(s, "0")
	if len(digits) > numDigits {
		return Decimal{}, &ErrTooLong{Digits: len(digits)}
	}

	// At most eleven digits, so the value fits a uint64.
	var value uint64
	for i := 0; i < len(digits); i++ {
		value = value*10 + uint64(digits[i]-'0')
	}
	return NewDecimal(value)
}
