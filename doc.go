// Package peselgo validates, decodes and encodes PESEL numbers, the
// national identity numbers issued in Poland.
//
// A PESEL is an eleven digit number of the form RRMMDDPPPPK that carries
// the holder's date of birth, a serial number with a sex marker and a
// control digit:
//
//	RR    digits 1-2   year of birth within its century
//	MM    digits 3-4   month of birth plus a century offset
//	DD    digits 5-6   day of birth
//	PPPP  digits 7-10  ordinal; last digit even for women, odd for men
//	K     digit 11     control digit
//
// The century of birth hides in the month digits as a multiple of twenty:
//
//	1800-1899  month + 80
//	1900-1999  month
//	2000-2099  month + 20
//	2100-2199  month + 40
//	2200-2299  month + 60
//
// # Representations
//
// The package offers two interchangeable representations of a validated
// number. Decimal keeps the literal decimal value and extracts sections by
// place value; Binary packs the five sections into a single uint64 for
// compact storage. Both satisfy the Pesel interface and convert to each
// other without loss:
//
//	d, err := peselgo.NewDecimal(2290486168)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(d)               // 02290486168
//	fmt.Println(d.DateOfBirth()) // 2002-09-04 00:00:00 +0000 UTC
//	fmt.Println(d.Sex())         // female
//
//	b := d.Binary() // same number, packed
//
// Numbers arriving as text go through Parse, and both representations
// marshal to the canonical eleven digit string:
//
//	d, err := peselgo.Parse("02290486168")
//
// # Validation
//
// Validate checks a candidate in three steps and reports the first failure:
// digit count, embedded date of birth, control digit. The control digit
// check multiplies the digits by the weights 1 3 7 9 1 3 7 9 1 3 1; a
// number is consistent when the weighted sum is divisible by ten. Numbers
// are treated as integers throughout, so leading zeros are accepted but
// never required.
package peselgo
