package domino

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/dominopress/dominopress/pkg/errors"
)

const (
	// columnBits is the number of pip rows in one column.
	columnBits = 8

	// frameMask has the two frame bits of a column set (rows 0 and 7).
	// Frame pips are always present and carry no payload.
	frameMask = 0x81

	// payloadMask selects the six payload bits of a column (rows 1-6).
	payloadMask = 0x7e

	// PayloadBits is the number of data-carrying bit positions per code.
	PayloadBits = 12

	// PayloadPips is the number of payload bits that must be set for a
	// code to be valid. The global count is what matters; the two columns
	// may split it unevenly.
	PayloadPips = 6
)

// Code is one 16-bit domino pattern. Bits 0-7 form column 0 and bits 8-15
// form column 1; within a column, bit i is the pip in row i, top to bottom.
//
// Any uint16 is representable as a Code and can be drawn; only codes for
// which [Code.Valid] reports true are meaningful tokens.
type Code uint16

// String formats the code as a four-digit hex literal, e.g. "0x83c1".
func (c Code) String() string {
	return fmt.Sprintf("0x%04x", uint16(c))
}

// ParseCode parses the hex form produced by [Code.String], with or
// without the "0x" prefix. It accepts any 16-bit value; callers that
// need a legal token should check [Code.Valid] afterwards.
func ParseCode(s string) (Code, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid code %q", s)
	}
	return Code(v), nil
}

// Column returns the 8-bit pip column i (0 or 1).
func (c Code) Column(i int) uint8 {
	return uint8(c >> (i * columnBits))
}

// Bit reports whether pip position i (0-15) is set.
// Position i maps to column i/8, row i%8.
func (c Code) Bit(i int) bool {
	return c&(1<<i) != 0
}

// PayloadCount returns the number of set payload bits across both columns.
func (c Code) PayloadCount() int {
	return bits.OnesCount16(uint16(c) & (payloadMask | payloadMask<<columnBits))
}

// framed reports whether all four frame pips are present.
func (c Code) framed() bool {
	return c.Column(0)&frameMask == frameMask && c.Column(1)&frameMask == frameMask
}

// mirrored reports whether the code is a reflective palindrome: column 0
// reversed top-to-bottom equals column 1. Such a tile is visually symmetric
// and would read the same from either end. bits.Reverse8 compiles down to
// a 256-entry table lookup.
func (c Code) mirrored() bool {
	return bits.Reverse8(c.Column(0)) == c.Column(1)
}

// Valid reports whether the code satisfies all legality rules: frame pips
// present in both columns, exactly [PayloadPips] payload bits set, and no
// reflective palindrome.
func (c Code) Valid() bool {
	return c.framed() && c.PayloadCount() == PayloadPips && !c.mirrored()
}
