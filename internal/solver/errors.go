// apps/solver/internal/solver/errors.go
//
// Error kinds surfaced by the solving engine. All are local, synchronous
// failures returned at the point of detection; the engine never retries
// (every computation here is deterministic) and never partially recovers —
// callers decide whether to re-prompt, abort, or fail a batch target.

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

// ErrEmptyGuessPool indicates the allowed-guess list is empty.
// A configuration error: fatal, not retried.
var ErrEmptyGuessPool = errors.New("solver: guess pool is empty")

// ErrNoCandidates indicates a guess was requested with no candidates left,
// which only happens after an unreported contradiction.
var ErrNoCandidates = errors.New("solver: no candidates remain")

// ContradictionError reports feedback that is inconsistent with every
// remaining possible solution (contradictory human input, or a target word
// absent from the loaded solutions list).
type ContradictionError struct {
	Guess    string
	Feedback feedback.Feedback
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("solver: feedback %s for guess %q contradicts every remaining candidate", e.Feedback, e.Guess)
}
