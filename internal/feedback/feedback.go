// apps/solver/internal/feedback/feedback.go
//
// Word model and feedback rule for the solver.
// Responsibilities:
//   - Fixed word length (5) and the lowercase a–z alphabet.
//   - Score a guess against a target with the classic two‑pass Wordle
//     algorithm (correct duplicate-letter accounting).
//   - Mark is an enum defined in this package (MarkHit/MarkPresent/MarkMiss);
//     its values double as the C/L/X wire codes so Feedback round-trips
//     losslessly through its string form.
//
// Notes:
//   - Words are plain lowercase strings, validated at the boundary with
//     IsWord; Score assumes validated inputs.
//   - Feedback is a fixed-size array, so it is comparable and usable
//     directly as a partition key.
package feedback

// WordLen is the number of letters in every word.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
// The values are the wire codes consumed from and produced at the boundary:
//   - 'C': letter is correct and in the correct position.
//   - 'L': letter exists in the target but in a different position.
//   - 'X': letter does not exist in the target at all.
type Mark byte

const (
	MarkHit     Mark = 'C'
	MarkPresent Mark = 'L'
	MarkMiss    Mark = 'X'
)

// Feedback is the per-position result of one guess against one target.
type Feedback [WordLen]Mark

// Score compares a guess to a target using the standard Wordle two‑pass
// scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non‑hit) target letters by letter index.
//
// Pass 2:
//   - For each non‑hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// This ensures correct behavior with repeated letters in both target and
// guess. The result is deterministic given (guess, target).
func Score(guess, target string) Feedback {
	var res Feedback

	// Letter frequency for the non‑hit positions (a–z).
	var counts [26]int

	// First pass: mark hits and collect counts for remaining target letters.
	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			res[i] = MarkHit
		} else {
			counts[idx(target[i])]++
		}
	}

	// Second pass: resolve presents/misses for non‑hit positions.
	for i := 0; i < WordLen; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// AllHit returns true if every mark is MarkHit (the guess equals the target).
func (f Feedback) AllHit() bool {
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// Hits counts the MarkHit positions.
func (f Feedback) Hits() int {
	n := 0
	for _, m := range f {
		if m == MarkHit {
			n++
		}
	}
	return n
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b) - 'a' }

// IsWord reports whether s is exactly WordLen lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
