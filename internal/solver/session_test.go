package solver

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

func TestSessionSolveFlow(t *testing.T) {
	d := mustLoad(t, []string{"crane", "slate", "trace"}, nil)
	sess := NewSession(d, nil)

	if sess.State() != StateAwaitingGuess {
		t.Fatalf("initial state = %v", sess.State())
	}
	if sess.Remaining() != 3 {
		t.Fatalf("initial candidates = %d", sess.Remaining())
	}

	guess, err := sess.Suggest()
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if sess.State() != StateAwaitingFeedback {
		t.Fatalf("state after Suggest = %v", sess.State())
	}
	// Suggest is idempotent while feedback is pending.
	again, err := sess.Suggest()
	if err != nil || again != guess {
		t.Fatalf("repeated Suggest = %q/%v, want %q", again, err, guess)
	}

	// Simulate the game hiding "trace".
	if err := sess.Observe(guess, feedback.Score(guess, "trace")); err != nil {
		t.Fatalf("Observe: %v", err)
	}
	for sess.State() != StateSolved {
		g, err := sess.Suggest()
		if err != nil {
			t.Fatalf("Suggest: %v", err)
		}
		if err := sess.Observe(g, feedback.Score(g, "trace")); err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if sess.Solution() != "trace" {
		t.Errorf("Solution = %q, want trace", sess.Solution())
	}
	if len(sess.History()) == 0 {
		t.Error("history empty after a solved game")
	}
	if _, err := sess.Suggest(); err == nil {
		t.Error("Suggest after solve should fail")
	}
	if err := sess.Observe("crane", feedback.Score("crane", "trace")); err == nil {
		t.Error("Observe after solve should fail")
	}
}

func TestSessionContradiction(t *testing.T) {
	d := mustLoad(t, []string{"crane", "slate"}, nil)
	sess := NewSession(d, nil)

	guess, err := sess.Suggest()
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	err = sess.Observe(guess, mustParse(t, "XXXXX"))
	var ce *ContradictionError
	if !errors.As(err, &ce) {
		t.Fatalf("Observe = %v, want ContradictionError", err)
	}
	if sess.State() != StateContradiction {
		t.Errorf("state = %v, want contradiction", sess.State())
	}
	if _, err := sess.Suggest(); err == nil {
		t.Error("Suggest after contradiction should fail")
	}
}

func TestSessionObservePlayerOwnGuess(t *testing.T) {
	d := mustLoad(t, []string{"crane", "slate", "trace"}, nil)
	sess := NewSession(d, nil)

	// The player ignored the suggestion and typed their own opener.
	if err := sess.Observe("crane", feedback.Score("crane", "trace")); err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if sess.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", sess.Remaining())
	}
	g, err := sess.Suggest()
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if g != "trace" {
		t.Errorf("Suggest = %q, want trace", g)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateAwaitingGuess:    "awaiting_guess",
		StateAwaitingFeedback: "awaiting_feedback",
		StateSolved:           "solved",
		StateContradiction:    "contradiction",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
