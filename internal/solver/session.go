// apps/solver/internal/solver/session.go
//
// One solving session: the candidate set for a single hidden target plus an
// explicit state machine driving the suggest → observe loop.
//
// States:
//   AwaitingGuess    — ready to suggest the next guess.
//   AwaitingFeedback — a guess is out; waiting for its feedback.
//   Solved           — all-hit feedback observed.
//   Contradiction    — feedback eliminated every remaining candidate.
//
// A session is owned by exactly one driver loop: single writer, no internal
// locking. Concurrent sessions share only the read-only dictionaries and
// the opening cache.

package solver

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// State is the session lifecycle position.
type State int

const (
	StateAwaitingGuess State = iota
	StateAwaitingFeedback
	StateSolved
	StateContradiction
)

func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateAwaitingFeedback:
		return "awaiting_feedback"
	case StateSolved:
		return "solved"
	case StateContradiction:
		return "contradiction"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Record is one played guess with the feedback observed for it.
type Record struct {
	Guess    string            `json:"guess"`
	Feedback feedback.Feedback `json:"feedback"`
}

// Session tracks candidates and history for one game.
type Session struct {
	selector   *Selector
	state      State
	candidates []string
	pending    string // guess suggested but not yet answered
	history    []Record
}

// NewSession starts a session over the full solutions list.
func NewSession(dicts *words.Dictionaries, cache *OpeningCache) *Session {
	return &Session{
		selector:   NewSelector(dicts, cache),
		state:      StateAwaitingGuess,
		candidates: dicts.Solutions(),
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Remaining is the current candidate count.
func (s *Session) Remaining() int { return len(s.candidates) }

// Candidates returns the live candidate set. Callers must not mutate it.
func (s *Session) Candidates() []string { return s.candidates }

// History returns the guesses played so far, in order.
func (s *Session) History() []Record { return s.history }

// Solution returns the answer once the session is solved, else "".
func (s *Session) Solution() string {
	if s.state == StateSolved && len(s.candidates) == 1 {
		return s.candidates[0]
	}
	return ""
}

// Suggest picks the next guess and moves to AwaitingFeedback.
// Calling it again before Observe returns the same pending guess.
func (s *Session) Suggest() (string, error) {
	switch s.state {
	case StateSolved:
		return "", fmt.Errorf("solver: session already solved")
	case StateContradiction:
		return "", fmt.Errorf("solver: session is contradicted")
	case StateAwaitingFeedback:
		return s.pending, nil
	}
	g, err := s.selector.Pick(s.candidates)
	if err != nil {
		return "", err
	}
	s.pending = g
	s.state = StateAwaitingFeedback
	return g, nil
}

// Observe applies the feedback seen for a played guess, shrinking the
// candidate set. The guess need not be the pending suggestion — a player
// may have typed their own word.
//
// All-hit feedback solves the session. An empty filter result moves the
// session to Contradiction and returns the ContradictionError; the session
// accepts no further calls after either terminal state.
func (s *Session) Observe(guess string, fb feedback.Feedback) error {
	if s.state == StateSolved || s.state == StateContradiction {
		return fmt.Errorf("solver: session finished (%s)", s.state)
	}
	s.history = append(s.history, Record{Guess: guess, Feedback: fb})
	s.pending = ""

	if fb.AllHit() {
		s.candidates = []string{guess}
		s.state = StateSolved
		return nil
	}

	next, err := Apply(s.candidates, guess, fb)
	if err != nil {
		s.state = StateContradiction
		return err
	}
	s.candidates = next
	s.state = StateAwaitingGuess
	return nil
}
