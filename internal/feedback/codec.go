// apps/solver/internal/feedback/codec.go
//
// Wire codec for Feedback: a WordLen string over {C, L, X}, positionally
// aligned with the guess it was observed for. Parse accepts lowercase
// codes too (hand-typed input); String always emits uppercase.

package feedback

import (
	"encoding/json"
	"fmt"
)

// MalformedFeedbackError reports an externally supplied feedback string
// that cannot be decoded.
type MalformedFeedbackError struct {
	Input  string
	Reason string
}

func (e *MalformedFeedbackError) Error() string {
	return fmt.Sprintf("malformed feedback %q: %s", e.Input, e.Reason)
}

// String encodes f as its C/L/X wire form.
func (f Feedback) String() string {
	b := make([]byte, WordLen)
	for i, m := range f {
		b[i] = byte(m)
	}
	return string(b)
}

// Parse decodes a C/L/X string into a Feedback.
// Round-trip guarantee: Parse(f.String()) == f for every Feedback f.
func Parse(s string) (Feedback, error) {
	var f Feedback
	if len(s) != WordLen {
		return f, &MalformedFeedbackError{Input: s, Reason: fmt.Sprintf("want %d marks, got %d", WordLen, len(s))}
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch Mark(c) {
		case MarkHit, MarkPresent, MarkMiss:
			f[i] = Mark(c)
		default:
			return Feedback{}, &MalformedFeedbackError{Input: s, Reason: fmt.Sprintf("invalid mark %q at position %d", s[i], i)}
		}
	}
	return f, nil
}

// MarshalJSON encodes the wire form, e.g. "LCCXC".
func (f Feedback) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes the wire form via Parse.
func (f *Feedback) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
