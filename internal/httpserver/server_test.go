package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dicts, err := words.Load(
		[]string{"crane", "slate", "trace"},
		[]string{"crate", "react"},
	)
	require.NoError(t, err)
	srv := New(dicts, solver.NewOpeningCache(), store.NewMemoryStore())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDebugWords(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/debug/words")
	require.NoError(t, err)
	defer res.Body.Close()
	counts := decode[map[string]int](t, res)
	require.Equal(t, 3, counts["solutions"])
	require.Equal(t, 5, counts["allowed"])
}

func TestSuggestStateless(t *testing.T) {
	ts := newTestServer(t)

	// No history: an opening pick over the full solutions list.
	res := postJSON(t, ts.URL+"/suggest", map[string]any{"history": []any{}})
	require.Equal(t, http.StatusOK, res.StatusCode)
	opening := decode[struct {
		Guess     string `json:"guess"`
		Remaining int    `json:"remaining"`
	}](t, res)
	require.Equal(t, 3, opening.Remaining)
	require.NotEmpty(t, opening.Guess)

	// One observation pinning the target to "trace".
	res = postJSON(t, ts.URL+"/suggest", map[string]any{
		"history": []map[string]string{
			{"guess": "crane", "feedback": feedback.Score("crane", "trace").String()},
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	narrowed := decode[struct {
		Guess     string `json:"guess"`
		Remaining int    `json:"remaining"`
	}](t, res)
	require.Equal(t, "trace", narrowed.Guess)
	require.Equal(t, 1, narrowed.Remaining)
}

func TestSuggestMalformedFeedback(t *testing.T) {
	ts := newTestServer(t)
	res := postJSON(t, ts.URL+"/suggest", map[string]any{
		"history": []map[string]string{{"guess": "crane", "feedback": "CCQXC"}},
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSuggestContradiction(t *testing.T) {
	ts := newTestServer(t)
	res := postJSON(t, ts.URL+"/suggest", map[string]any{
		"history": []map[string]string{{"guess": "crane", "feedback": "XXXXX"}},
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestSessionFlow(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/session/new", map[string]any{})
	require.Equal(t, http.StatusOK, res.StatusCode)
	opened := decode[struct {
		SessionID string `json:"sessionId"`
		State     string `json:"state"`
		Guess     string `json:"guess"`
		Remaining int    `json:"remaining"`
	}](t, res)
	require.NotEmpty(t, opened.SessionID)
	require.NotEmpty(t, opened.Guess)
	require.Equal(t, 3, opened.Remaining)

	// Drive the session against a hidden "trace" until solved.
	guess := opened.Guess
	for i := 0; i < 5; i++ {
		res = postJSON(t, ts.URL+"/session/feedback", map[string]string{
			"sessionId": opened.SessionID,
			"guess":     guess,
			"feedback":  feedback.Score(guess, "trace").String(),
		})
		require.Equal(t, http.StatusOK, res.StatusCode)
		step := decode[struct {
			State    string `json:"state"`
			Guess    string `json:"guess"`
			Solution string `json:"solution"`
		}](t, res)
		if step.State == "solved" {
			require.Equal(t, "trace", step.Solution)
			return
		}
		require.NotEmpty(t, step.Guess)
		guess = step.Guess
	}
	t.Fatal("session did not solve a 3-word dictionary in 5 rounds")
}

func TestSessionNotFound(t *testing.T) {
	ts := newTestServer(t)
	res := postJSON(t, ts.URL+"/session/feedback", map[string]string{
		"sessionId": "deadbeefdeadbeef",
		"feedback":  "XXXXX",
	})
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSessionContradiction(t *testing.T) {
	ts := newTestServer(t)
	res := postJSON(t, ts.URL+"/session/new", map[string]any{})
	opened := decode[struct {
		SessionID string `json:"sessionId"`
		Guess     string `json:"guess"`
	}](t, res)

	res = postJSON(t, ts.URL+"/session/feedback", map[string]string{
		"sessionId": opened.SessionID,
		"guess":     opened.Guess,
		"feedback":  "XXXXX",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode)
}
