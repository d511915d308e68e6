package solver

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func mustLoad(t *testing.T, solutions, allowed []string) *words.Dictionaries {
	t.Helper()
	d, err := words.Load(solutions, allowed)
	if err != nil {
		t.Fatalf("words.Load: %v", err)
	}
	return d
}

func TestPickSingleCandidate(t *testing.T) {
	d := mustLoad(t, []string{"crane", "slate"}, nil)
	got, err := NewSelector(d, nil).Pick([]string{"slate"})
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got != "slate" {
		t.Errorf("Pick = %q, want slate", got)
	}
}

func TestPickMinimizesExpectedRemaining(t *testing.T) {
	// "salet"-style probe words don't exist in this tiny pool; the best
	// guess is whichever allowed word yields the smallest expected
	// remaining set, recomputed here independently.
	d := mustLoad(t, []string{"crane", "slate", "trace"}, []string{"crate", "react"})
	candidates := d.Solutions()

	got, err := NewSelector(d, nil).Pick(candidates)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	bestScore := ExpectedRemaining(got, candidates)
	for _, g := range d.Allowed() {
		if s := ExpectedRemaining(g, candidates); s < bestScore {
			t.Errorf("Pick chose %q (%.3f) but %q scores %.3f", got, bestScore, g, s)
		}
	}
}

func TestPickPrefersLiveCandidateOnTie(t *testing.T) {
	// "birch" fully separates tiger from totem, as does guessing either
	// candidate: all three score 1.0. The live candidates must win the tie
	// even though "birch" sorts first.
	d := mustLoad(t, []string{"tiger", "totem"}, []string{"birch"})
	got, err := NewSelector(d, nil).Pick(d.Solutions())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got != "tiger" {
		t.Errorf("Pick = %q, want the lexicographically first live candidate tiger", got)
	}
}

func TestPickLexicographicTieBreak(t *testing.T) {
	// Both candidates distinguish each other equally; the smaller word wins.
	d := mustLoad(t, []string{"amble", "apple"}, nil)
	got, err := NewSelector(d, nil).Pick(d.Solutions())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got != "amble" {
		t.Errorf("Pick = %q, want amble", got)
	}
}

func TestPickEmptyGuessPool(t *testing.T) {
	_, err := NewSelector(&words.Dictionaries{}, nil).Pick([]string{"crane", "slate"})
	if !errors.Is(err, ErrEmptyGuessPool) {
		t.Errorf("got %v, want ErrEmptyGuessPool", err)
	}
}

func TestPickNoCandidates(t *testing.T) {
	d := mustLoad(t, []string{"crane"}, nil)
	_, err := NewSelector(d, nil).Pick(nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("got %v, want ErrNoCandidates", err)
	}
}

func TestOpeningCache(t *testing.T) {
	d := mustLoad(t, []string{"crane", "slate", "trace"}, []string{"crate"})
	cache := NewOpeningCache()

	first, err := NewSelector(d, cache).Pick(d.Solutions())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got, ok := cache.get(d.Fingerprint()); !ok || got != first {
		t.Fatalf("cache entry = %q/%v, want %q", got, ok, first)
	}

	// A poisoned entry must be served back verbatim, proving the second
	// opening pick never re-evaluates the pool.
	cache.put(d.Fingerprint(), "zzzzz")
	again, err := NewSelector(d, cache).Pick(d.Solutions())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if again != "zzzzz" {
		t.Errorf("cached opening = %q, want zzzzz", again)
	}

	// A different dictionary pair misses the cache.
	other := mustLoad(t, []string{"crane", "slate"}, nil)
	if _, ok := cache.get(other.Fingerprint()); ok {
		t.Error("different dictionaries unexpectedly share a cache entry")
	}
}

func TestExpectedRemainingScenario(t *testing.T) {
	candidates := []string{"crane", "slate", "trace"}
	// "crane" splits the three candidates into three singleton groups:
	// expected remaining (1+1+1)/3 = 1.
	if got := ExpectedRemaining("crane", candidates); got != 1.0 {
		t.Errorf("ExpectedRemaining(crane) = %v, want 1", got)
	}
	// A guess sharing no letters with any candidate puts everything in one
	// group: the whole set remains.
	if got := ExpectedRemaining("jumpy", []string{"trace", "crate"}); got != 2.0 {
		t.Errorf("ExpectedRemaining(jumpy) = %v, want 2", got)
	}
}
