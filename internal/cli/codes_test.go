package cli

import (
	"testing"

	"github.com/dominopress/dominopress/pkg/domino"
)

func TestPayloadCombinations(t *testing.T) {
	// C(12,6) ways to place six pips in twelve payload positions.
	if got := payloadCombinations(); got != 924 {
		t.Errorf("payloadCombinations() = %d, want 924", got)
	}
}

func TestPalindromeRejectionShrinksPool(t *testing.T) {
	deck := domino.Default()
	if deck.Size() >= payloadCombinations() {
		t.Errorf("deck size %d should be below the candidate pool %d",
			deck.Size(), payloadCombinations())
	}
}

func TestRunCodesShowRejectsGarbage(t *testing.T) {
	if err := runCodesShow("not-hex"); err == nil {
		t.Error("runCodesShow() should reject non-hex input")
	}
}
