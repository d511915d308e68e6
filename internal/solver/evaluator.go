// apps/solver/internal/solver/evaluator.go
//
// Guess evaluator: scores one hypothetical guess against a candidate set by
// partitioning the set by the feedback each candidate would produce.
//
// The score is the expected size of the remaining candidate set after the
// guess is played, assuming each current candidate is equally likely to be
// the hidden target: Σ nᵢ²/N over partition group sizes nᵢ. Lower is
// strictly better. This is a one-ply expected-value heuristic, not
// information-theoretic entropy and not a multi-guess search; it is cheap
// (O(N) feedback computations plus O(N) grouping) and empirically close to
// optimal. Known limitation: it does not account for how evenly future
// guesses could further split each resulting group.

package solver

import "github.com/robalobadob/wordle/apps/solver/internal/feedback"

// ExpectedRemaining returns the expected number of candidates left after
// playing guess against the given candidate set.
//
// Precondition: candidates is non-empty. The selector never calls this with
// an empty set.
func ExpectedRemaining(guess string, candidates []string) float64 {
	groups := make(map[feedback.Feedback]int)
	for _, target := range candidates {
		groups[feedback.Score(guess, target)]++
	}
	var sum float64
	for _, n := range groups {
		sum += float64(n) * float64(n)
	}
	return sum / float64(len(candidates))
}
