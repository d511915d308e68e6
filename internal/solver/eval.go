// apps/solver/internal/solver/eval.go
//
// Full-dictionary evaluation: play every solution word as the hidden target
// and aggregate how many guesses each one took. Target runs are independent
// (each owns a private candidate set and shares only the read-only
// dictionaries and the opening cache), so they parallelize with a bounded
// errgroup.

package solver

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// FailThreshold is the standard Wordle guess budget; targets needing more
// guesses count as failures in the report.
const FailThreshold = 6

// TargetResult is the outcome for one hidden target.
type TargetResult struct {
	Target  string
	Guesses []string
	Err     error
}

// Report aggregates a full evaluation run.
type Report struct {
	Targets      int
	Histogram    map[int]int // guesses taken → number of targets
	Failed       []string    // targets needing more than FailThreshold guesses
	TotalGuesses int
}

// Average is the mean number of guesses per target.
func (r *Report) Average() float64 {
	if r.Targets == 0 {
		return 0
	}
	return float64(r.TotalGuesses) / float64(r.Targets)
}

// GuessCounts returns the histogram keys in ascending order.
func (r *Report) GuessCounts() []int {
	counts := make([]int, 0, len(r.Histogram))
	for n := range r.Histogram {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts
}

// Evaluate solves every word in the solutions list with up to workers
// concurrent runs (0 means GOMAXPROCS). progress, if non-nil, is invoked
// once per finished target under the aggregation lock, in completion order.
//
// The histogram totals exactly the solutions count on success. Any target
// failing to solve (impossible for in-dictionary targets, so it indicates a
// corrupted setup) aborts the run with that target's error.
func Evaluate(ctx context.Context, dicts *words.Dictionaries, cache *OpeningCache, workers int, progress func(TargetResult)) (*Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	report := &Report{Histogram: make(map[int]int)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, target := range dicts.Solutions() {
		target := target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			guesses, err := SolveTarget(dicts, cache, target)

			mu.Lock()
			defer mu.Unlock()
			if progress != nil {
				progress(TargetResult{Target: target, Guesses: guesses, Err: err})
			}
			if err != nil {
				return fmt.Errorf("target %q: %w", target, err)
			}
			n := len(guesses)
			report.Targets++
			report.Histogram[n]++
			report.TotalGuesses += n
			if n > FailThreshold {
				report.Failed = append(report.Failed, target)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(report.Failed)
	return report, nil
}
