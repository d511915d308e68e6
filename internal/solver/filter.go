// apps/solver/internal/solver/filter.go
//
// Candidate filter: shrinks the live set of possible solutions as feedback
// arrives. Consistency is defined by recomputing the feedback rule, never
// approximated, so the invariant "candidates = every solution consistent
// with every observation so far" holds by construction.

package solver

import "github.com/robalobadob/wordle/apps/solver/internal/feedback"

// Consistent reports whether candidate could still be the hidden target,
// given that guessing guess produced fb. Definitionally:
// Score(guess, candidate) == fb.
func Consistent(candidate, guess string, fb feedback.Feedback) bool {
	return feedback.Score(guess, candidate) == fb
}

// Apply returns the subset of candidates consistent with observing fb for
// guess. Pure: the input slice is left untouched, so many hypothetical
// guesses can be probed against the same snapshot.
//
// An empty result means fb is impossible for every remaining candidate and
// is returned as a ContradictionError rather than an empty set, since an
// empty candidate set makes further guess selection undefined.
func Apply(candidates []string, guess string, fb feedback.Feedback) ([]string, error) {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Consistent(w, guess, fb) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, &ContradictionError{Guess: guess, Feedback: fb}
	}
	return out, nil
}
