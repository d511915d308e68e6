// apps/solver/internal/solver/selector.go
//
// Guess selector: runs the evaluator over every allowed guess and picks the
// one that minimizes the expected remaining candidate count.
//
// Tie-break (deterministic, so the exact guess sequence is reproducible
// given the same dictionaries):
//   1. lower expected remaining count wins;
//   2. on equal score, a guess that is itself a live candidate beats one
//      that is not (it can win immediately, not only gather information);
//   3. still equal, the lexicographically smaller word wins.

package solver

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Selector picks guesses for one dictionary pair. Stateless apart from the
// read-only dictionaries and the optional shared opening cache; safe to use
// from concurrent sessions.
type Selector struct {
	dicts *words.Dictionaries
	cache *OpeningCache
}

// NewSelector builds a Selector. cache may be nil to disable opening-guess
// memoization.
func NewSelector(dicts *words.Dictionaries, cache *OpeningCache) *Selector {
	return &Selector{dicts: dicts, cache: cache}
}

// Pick returns the best next guess for the given candidate set.
//
// A single remaining candidate is returned immediately: it is either the
// answer or, against a target outside the solutions list, will surface a
// contradiction on the next filter. This also bounds every game by
// |candidates| guesses in the worst case.
//
// An empty guess pool is a configuration error (ErrEmptyGuessPool); an
// empty candidate set means a contradiction went unreported
// (ErrNoCandidates).
func (s *Selector) Pick(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	pool := s.dicts.Allowed()
	if len(pool) == 0 {
		return "", ErrEmptyGuessPool
	}

	// Candidates only ever shrink from the full solutions list, so a length
	// match means no feedback has been applied yet: the opening position.
	opening := len(candidates) == len(s.dicts.Solutions())
	if opening {
		if g, ok := s.cache.get(s.dicts.Fingerprint()); ok {
			return g, nil
		}
	}

	live := make(map[string]struct{}, len(candidates))
	for _, w := range candidates {
		live[w] = struct{}{}
	}

	best := ""
	bestScore := math.Inf(1)
	bestLive := false
	for _, g := range pool {
		score := ExpectedRemaining(g, candidates)
		if score > bestScore {
			continue
		}
		_, isLive := live[g]
		if score == bestScore {
			if bestLive && !isLive {
				continue
			}
			if bestLive == isLive && g > best {
				continue
			}
		}
		best, bestScore, bestLive = g, score, isLive
	}

	if opening {
		s.cache.put(s.dicts.Fingerprint(), best)
	}
	return best, nil
}

// Dictionaries exposes the selector's word lists.
func (s *Selector) Dictionaries() *words.Dictionaries { return s.dicts }
