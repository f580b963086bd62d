// Package domino provides the core encoding engine for printable domino
// tokens: the 16-bit code layout, the legality rules, the enumeration of
// all valid codes, unique random sampling, and the tile geometry that maps
// a code to drawable primitives.
//
// # Code layout
//
// A [Code] packs two 8-bit pip columns: bits 0-7 form column 0, bits 8-15
// form column 1. Within each column, bit 0 and bit 7 are frame pips that
// are always present; they mark the tile outline and orientation and carry
// no data. The remaining six bits per column (twelve per code) are payload.
//
// A code is valid when all four frame bits are set, exactly six of the
// twelve payload bits are set, and the code is not a reflective palindrome:
// the bit-reversal of column 0 must differ from column 1, because a tile
// whose second column mirrors the first reads identically from both ends.
//
// # Deck
//
// [NewDeck] enumerates every valid code once, in deterministic order.
// Rather than scanning all 65,536 16-bit values, enumeration walks the
// 4096-element payload space and keeps the combinations with exactly six
// set bits, so only a few hundred candidates are ever assembled. The
// resulting [Deck] is immutable; [Default] shares a single process-wide
// deck computed on first use.
//
// [Deck.Sample] draws a requested number of distinct codes uniformly at
// random using a partial Fisher-Yates shuffle over a working copy, leaving
// the deck itself untouched. Requests exceeding the deck size fail with
// the INSUFFICIENT_CAPACITY error code; the code space is a hard limit.
//
// # Geometry
//
// [Metrics] derives every tile dimension from two constants, the pip
// diameter and the pip margin. [Metrics.Tile] converts a code plus a
// position into a rounded-rectangle body and one circle per set bit,
// expressed in the same linear unit as the inputs and independent of any
// rendering backend.
package domino
