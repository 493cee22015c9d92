package peselgo

import (
	"encoding"
	"fmt"
)

var (
	_ fmt.Stringer             = Decimal{}
	_ encoding.TextMarshaler   = Decimal{}
	_ encoding.TextUnmarshaler = (*Decimal)(nil)
	_ fmt.Stringer             = Binary{}
	_ encoding.TextMarshaler   = Binary{}
	_ encoding.TextUnmarshaler = (*Binary)(nil)
)

// String returns the canonical zero padded eleven digit form.
func (d Decimal) String() string {
	return fmt.Sprintf("%011d", d.value)
}

// MarshalText implements encoding.TextMarshaler. The text is the canonical
// eleven digit form, which also makes the number a JSON string.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as Parse.
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the canonical zero padded eleven digit form.
func (b Binary) String() string {
	return fmt.Sprintf("%011d", b.Uint64())
}

// MarshalText implements encoding.TextMarshaler. Both representations share
// the canonical eleven digit text, not the packed word.
func (b Binary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as Parse.
func (b *Binary) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed.Binary()
	return nil
}
