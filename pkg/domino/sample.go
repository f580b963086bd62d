package domino

import (
	"math/rand/v2"
	"slices"

	"github.com/dominopress/dominopress/pkg/errors"
)

// Sample draws n distinct codes from the deck, uniformly at random, using
// the provided random source. The deck itself is not modified; each call
// shuffles a private copy.
//
// The draw is a partial Fisher-Yates: position i swaps with a uniformly
// random position in [i, size), so only n swaps happen regardless of deck
// size and no selected index is ever revisited.
//
// Sample fails with the INSUFFICIENT_CAPACITY code when n exceeds the
// deck size. That is a hard limit of the code space, not a transient
// condition; callers must not retry.
func (d *Deck) Sample(rng *rand.Rand, n int) ([]Code, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidCount, "sample count must be non-negative, got %d", n)
	}
	if n > len(d.codes) {
		return nil, errors.New(errors.ErrCodeInsufficientCapacity,
			"requested %d unique codes but only %d valid codes exist", n, len(d.codes))
	}

	work := slices.Clone(d.codes)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n:n], nil
}
