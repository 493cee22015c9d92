package peselgo

// Digit counts of a well formed number. The canonical form has numDigits
// digits. Numbers are handled as integers, so leading zeros vanish; the
// month section keeps every valid number at or above 10^7, which leaves
// minDigits as the shortest possible rendering.
const (
	numDigits = 11
	minDigits = 8
)

// weights of the control digit checksum, most significant digit first. The
// weighted digit sum of a valid number is divisible by 10.
var weights = [numDigits]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3, 1}

// checksum returns the weighted digit sum of s, a rendering of at most
// numDigits decimal digits. Digits are aligned to the least significant
// weight, so missing leading zeros contribute nothing to the sum.
func checksum(s string) int {
	var sum int
	offset := numDigits - len(s)
	for i := 0; i < len(s); i++ {
		sum += int(s[i]-'0') * weights[offset+i]
	}
	return sum
}

// MonthFromSection strips the century offset from a month section. Sections
// of a real number decode to months 1 through 12; out of band sections such
// as 13 or 40 decode to months no calendar has and fail date validation.
func MonthFromSection(section uint8) uint8 {
	return section - section/10/2*20
}

// MonthToSection folds the century of year into month, the inverse of
// MonthFromSection. Births in the 1900s keep the plain month; the 2000s,
// 2100s and 2200s add 20, 40 and 60, and the 1800s add 80. The century
// bands repeat every ten centuries.
func MonthToSection(month uint8, year int) uint8 {
	band := year / 100 % 10
	switch band {
	case 8:
		return month + 80
	case 9:
		return month
	default:
		return month + uint8(band+1)*20
	}
}

// YearFromSections reconstructs the four digit year of birth from the year
// section and the century offset carried by the month section.
func YearFromSections(yearSection, monthSection uint8) int {
	shift := int(monthSection) / 10 / 2 * 2
	if shift == 8 {
		return 1800 + int(yearSection)
	}
	return 1900 + shift*50 + int(yearSection)
}
