// apps/solver/internal/words/words.go
//
// Provides word list management for the solver engine.
//
// Responsibilities:
//   - Load solutions and allowed-guess lists from environment-provided files
//     or fall back to embedded defaults.
//   - Validate entries (exactly 5 lowercase letters) and reject bad input
//     with InvalidWordError.
//   - Maintain sets for quick lookups (solutions only, solutions∪guesses).
//   - Supply utility functions like IsAllowed, IsSolution, Stats, and a
//     content fingerprint used to key the opening-guess cache.
//
// Word Lists:
//   - "solutions": canonical hidden answers.
//   - "allowed": valid guesses (always includes solutions).
//
// Loading behavior (FromEnv):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load solutions from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both solutions and allowed guesses.
//   3. If neither is set,
//      fall back to small embedded defaults.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Lists are normalized to lowercase, deduplicated, and sorted, so every
//     load of the same content produces the same Dictionaries (and the same
//     fingerprint).
//   • File loading skips non-conforming lines the way word list files are
//     usually mixed-length; Load itself is strict and errors on bad entries.

package words

import (
	"bufio"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

// --- embedded tiny defaults (ensures the solver runs even if no files configured) ---

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// ErrNoSolutions is returned when loading yields an empty solutions list.
var ErrNoSolutions = errors.New("words: solutions list is empty")

// InvalidWordError reports a dictionary entry with the wrong length or
// characters outside a–z.
type InvalidWordError struct {
	Word string
	List string // "solutions" or "allowed"
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("words: invalid %s entry %q: want %d lowercase letters a-z", e.List, e.Word, feedback.WordLen)
}

// Dictionaries holds the two word lists for one solving session family.
// Immutable after construction; safe for concurrent readers.
type Dictionaries struct {
	solutions   []string            // canonical answers, sorted
	allowed     []string            // solutions ∪ guesses, sorted
	solutionSet map[string]struct{} // solutions only
	allowedSet  map[string]struct{} // solutions ∪ guesses
	fingerprint string              // content hash of (solutions, allowed)
}

// Option tweaks loading.
type Option func(*loadConfig)

type loadConfig struct {
	uniqueLetters bool
}

// UniqueLetters drops words containing a repeated letter from both lists.
func UniqueLetters() Option {
	return func(c *loadConfig) { c.uniqueLetters = true }
}

// Load builds Dictionaries from explicit lists.
// Every entry must be exactly 5 lowercase letters; the first offender is
// returned as an InvalidWordError. The allowed list always ends up a
// superset of solutions. An empty solutions list is ErrNoSolutions.
func Load(solutions, allowed []string, opts ...Option) (*Dictionaries, error) {
	var cfg loadConfig
	for _, o := range opts {
		o(&cfg)
	}

	sols, err := normalize(solutions, "solutions", cfg)
	if err != nil {
		return nil, err
	}
	allow, err := normalize(allowed, "allowed", cfg)
	if err != nil {
		return nil, err
	}
	if len(sols) == 0 {
		return nil, ErrNoSolutions
	}

	// Ensure all solutions are also allowed guesses.
	allowSet := toSet(allow)
	for _, w := range sols {
		allowSet[w] = struct{}{}
	}
	allow = allow[:0]
	for w := range allowSet {
		allow = append(allow, w)
	}
	sort.Strings(allow)

	return &Dictionaries{
		solutions:   sols,
		allowed:     allow,
		solutionSet: toSet(sols),
		allowedSet:  allowSet,
		fingerprint: fingerprintOf(sols, allow),
	}, nil
}

// LoadFiles reads one or two newline-separated word files.
// If solutionsPath is empty, allowedPath serves both roles.
func LoadFiles(solutionsPath, allowedPath string, opts ...Option) (*Dictionaries, error) {
	allow, err := readWordFile(allowedPath)
	if err != nil {
		return nil, err
	}
	sols := allow
	if solutionsPath != "" {
		sols, err = readWordFile(solutionsPath)
		if err != nil {
			return nil, err
		}
	}
	return Load(sols, allow, opts...)
}

// FromEnv loads word lists per the environment variables documented above,
// falling back to the embedded defaults.
func FromEnv(opts ...Option) (*Dictionaries, error) {
	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		return LoadFiles(answersPath, allowedPath, opts...)

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		return LoadFiles("", allowedPath, opts...)

	// Case 3: fallback to embedded defaults
	default:
		return Load(normalizeLines(embeddedAnswers), normalizeLines(embeddedAllowed), opts...)
	}
}

// normalize lowercases, validates, optionally filters repeats, dedups, sorts.
func normalize(list []string, name string, cfg loadConfig) ([]string, error) {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, raw := range list {
		w := strings.TrimSpace(strings.ToLower(raw))
		if !feedback.IsWord(w) {
			return nil, &InvalidWordError{Word: raw, List: name}
		}
		if cfg.uniqueLetters && hasRepeats(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if feedback.IsWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if feedback.IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// hasRepeats reports whether w contains the same letter twice.
func hasRepeats(w string) bool {
	var seen [26]bool
	for i := 0; i < len(w); i++ {
		j := w[i] - 'a'
		if seen[j] {
			return true
		}
		seen[j] = true
	}
	return false
}

// fingerprintOf hashes both sorted lists into a stable hex digest.
func fingerprintOf(solutions, allowed []string) string {
	h := sha256.New()
	for _, w := range solutions {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte{0})
	for _, w := range allowed {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Solutions returns the sorted solutions list. Callers must not mutate it.
func (d *Dictionaries) Solutions() []string { return d.solutions }

// Allowed returns the sorted allowed-guess list (solutions ∪ guesses).
// Callers must not mutate it.
func (d *Dictionaries) Allowed() []string { return d.allowed }

// IsAllowed reports whether w is a valid guess (solutions ∪ guesses).
func (d *Dictionaries) IsAllowed(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsSolution reports whether w is a solution word.
func (d *Dictionaries) IsSolution(w string) bool {
	_, ok := d.solutionSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (solutions, allowed).
func (d *Dictionaries) Stats() (solutionsCount int, allowedCount int) {
	return len(d.solutions), len(d.allowed)
}

// Fingerprint identifies the exact (solutions, allowed) content.
// Two Dictionaries with equal fingerprints load identical lists.
func (d *Dictionaries) Fingerprint() string { return d.fingerprint }
