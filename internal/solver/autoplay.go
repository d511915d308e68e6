// apps/solver/internal/solver/autoplay.go
//
// Unattended play against a known target word: simulate the feedback the
// game would give and feed it back into the session until the target is
// guessed or a contradiction proves the target is not in the solutions
// list.

package solver

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// SolveTarget plays a full game against target, returning every guess made
// in order (the last one equals target on success).
//
// A target outside the solutions list eventually empties the candidate set
// and is reported as a ContradictionError, with the guesses made so far.
func SolveTarget(dicts *words.Dictionaries, cache *OpeningCache, target string) ([]string, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if !feedback.IsWord(target) {
		return nil, fmt.Errorf("solver: target %q is not a %d-letter word", target, feedback.WordLen)
	}

	sess := NewSession(dicts, cache)
	var guesses []string

	// While two or more candidates remain the chosen guess always splits
	// them (a live candidate separates itself, and the selector never does
	// worse), so each round shrinks the set; |solutions| iterations suffice.
	for i := 0; i <= len(dicts.Solutions()); i++ {
		g, err := sess.Suggest()
		if err != nil {
			return guesses, err
		}
		guesses = append(guesses, g)
		if g == target {
			return guesses, nil
		}
		if err := sess.Observe(g, feedback.Score(g, target)); err != nil {
			return guesses, err
		}
	}
	return guesses, fmt.Errorf("solver: target %q not reached in %d guesses", target, len(guesses))
}
