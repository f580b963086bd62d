package domino

import (
	"math/bits"
	"slices"
	"sync"
)

// Deck is the immutable set of all valid codes, in enumeration order.
// A Deck is safe for concurrent use: it is never mutated after
// construction, and sampling works on a private copy.
//
// Most callers want [Default]; construct a fresh deck with [NewDeck] only
// when isolation matters, e.g. in tests.
type Deck struct {
	codes []Code
}

// NewDeck enumerates every valid code and returns the resulting deck.
//
// Enumeration walks the 12-bit payload space instead of all 65,536 code
// values: only payloads with exactly [PayloadPips] set bits survive, the
// two 6-bit halves are shifted into the payload rows of their columns,
// the frame pips are OR-ed in, and reflective palindromes are rejected.
// The construction cannot produce duplicates, but the insert guards
// against them anyway so the legality rules stay the single source of
// truth.
func NewDeck() *Deck {
	codes := make([]Code, 0, 1<<PayloadBits>>2)
	seen := make(map[Code]struct{})

	for p := 0; p < 1<<PayloadBits; p++ {
		if bits.OnesCount16(uint16(p)) != PayloadPips {
			continue
		}

		// Low six bits become column 0's payload rows 1-6, high six bits
		// column 1's. Row 0 and row 7 are the frame pips.
		col0 := uint8(p&0x3f)<<1 | frameMask
		col1 := uint8(p>>6)<<1 | frameMask
		code := Code(uint16(col0) | uint16(col1)<<columnBits)

		if code.mirrored() {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return &Deck{codes: codes}
}

// defaultDeck computes the shared deck exactly once. The legality rules
// are fixed, so the result never needs recomputation.
var defaultDeck = sync.OnceValue(NewDeck)

// Default returns the process-wide deck, enumerated on first call and
// shared read-only thereafter.
func Default() *Deck {
	return defaultDeck()
}

// Size returns the number of valid codes in the deck.
func (d *Deck) Size() int {
	return len(d.codes)
}

// Codes returns the deck's codes in enumeration order. The slice is a
// copy; callers may modify it freely.
func (d *Deck) Codes() []Code {
	return slices.Clone(d.codes)
}

// Contains reports whether code is a member of the deck.
func (d *Deck) Contains(code Code) bool {
	return slices.Contains(d.codes, code)
}
