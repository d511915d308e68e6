// apps/solver/internal/httpserver/server.go
//
// HTTP wiring for the solver suggestion service.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - One-shot suggestion: POST /suggest (stateless; the request carries the
//     full guess/feedback history and the engine recomputes from scratch).
//   - Stateful flow: POST /session/new, POST /session/feedback, backed by
//     the in-memory session store.
//
// Notes:
//   - Sessions are single-writer by design; a server-level mutex serializes
//     mutations so concurrent requests against one session cannot interleave.
//   - Contradictory feedback answers 409 with the engine's error message;
//     malformed input answers 400. Nothing is retried server-side.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Server bundles router, dictionaries, opening cache, and session store.
type Server struct {
	r     *chi.Mux
	dicts *words.Dictionaries
	cache *solver.OpeningCache
	store store.Store

	mu sync.Mutex // serializes stored-session mutations
}

// New constructs a Server, installs middleware, and registers routes.
func New(dicts *words.Dictionaries, cache *solver.OpeningCache, st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), dicts: dicts, cache: cache, store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time (opening pick is the slow path)
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /suggest","POST /session/new","POST /session/feedback"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Debug: word list counts
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		sols, allowed := s.dicts.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"solutions": sols, "allowed": allowed})
	})

	// Solver endpoints
	s.r.Post("/suggest", s.handleSuggest)
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Post("/session/feedback", s.handleSessionFeedback)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SUGGEST ------------------------------------

// historyEntry is one observed guess/feedback pair on the wire.
type historyEntry struct {
	Guess    string            `json:"guess"`
	Feedback feedback.Feedback `json:"feedback"`
}

// suggestReq/Res payloads for POST /suggest.
type suggestReq struct {
	History []historyEntry `json:"history"`
}
type suggestRes struct {
	Guess     string `json:"guess"`
	Remaining int    `json:"remaining"`
}

// handleSuggest replays the supplied history against the full solutions
// list and answers with the best next guess. Stateless: nothing is stored.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, err)
		return
	}

	candidates := s.dicts.Solutions()
	for _, h := range req.History {
		if !feedback.IsWord(h.Guess) {
			http.Error(w, `{"error":"invalid_guess","guess":"`+h.Guess+`"}`, http.StatusBadRequest)
			return
		}
		next, err := solver.Apply(candidates, h.Guess, h.Feedback)
		if err != nil {
			contradiction(w, err)
			return
		}
		candidates = next
	}

	guess, err := solver.NewSelector(s.dicts, s.cache).Pick(candidates)
	if err != nil {
		log.Error().Err(err).Msg("pick guess")
		http.Error(w, `{"error":"pick_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestRes{Guess: guess, Remaining: len(candidates)})
}

// ------------------------------ SESSIONS -----------------------------------

// sessionRes is the common session payload.
type sessionRes struct {
	SessionID string `json:"sessionId"`
	State     string `json:"state"`
	Guess     string `json:"guess,omitempty"`
	Solution  string `json:"solution,omitempty"`
	Remaining int    `json:"remaining"`
}

// handleNewSession opens a solving session and answers with the opening guess.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := solver.NewSession(s.dicts, s.cache)
	guess, err := sess.Suggest()
	if err != nil {
		log.Error().Err(err).Msg("opening suggest")
		http.Error(w, `{"error":"pick_failed"}`, http.StatusInternalServerError)
		return
	}
	id, err := s.store.Put(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("store session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionRes{
		SessionID: id,
		State:     sess.State().String(),
		Guess:     guess,
		Remaining: sess.Remaining(),
	})
}

// feedbackReq is the payload for POST /session/feedback.
// Guess may be omitted to mean "the guess the server last suggested".
type feedbackReq struct {
	SessionID string            `json:"sessionId"`
	Guess     string            `json:"guess,omitempty"`
	Feedback  feedback.Feedback `json:"feedback"`
}

// handleSessionFeedback advances a stored session with one observation and
// answers with the next suggestion (or the terminal state).
func (s *Server) handleSessionFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, err)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	guess := req.Guess
	if guess == "" {
		// The pending suggestion, re-read rather than trusted from the client.
		guess, err = sess.Suggest()
		if err != nil {
			badRequest(w, err)
			return
		}
	}
	if !feedback.IsWord(guess) {
		http.Error(w, `{"error":"invalid_guess","guess":"`+guess+`"}`, http.StatusBadRequest)
		return
	}

	if err := sess.Observe(guess, req.Feedback); err != nil {
		var ce *solver.ContradictionError
		if errors.As(err, &ce) {
			contradiction(w, err)
			return
		}
		badRequest(w, err)
		return
	}

	res := sessionRes{
		SessionID: req.SessionID,
		State:     sess.State().String(),
		Remaining: sess.Remaining(),
	}
	if sess.State() == solver.StateSolved {
		res.Solution = sess.Solution()
	} else {
		next, err := sess.Suggest()
		if err != nil {
			log.Error().Err(err).Msg("next suggest")
			http.Error(w, `{"error":"pick_failed"}`, http.StatusInternalServerError)
			return
		}
		res.Guess = next
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ helpers ------------------------------------

func badRequest(w http.ResponseWriter, err error) {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	http.Error(w, string(body), http.StatusBadRequest)
}

func contradiction(w http.ResponseWriter, err error) {
	body, _ := json.Marshal(map[string]string{"error": "contradiction", "detail": err.Error()})
	http.Error(w, string(body), http.StatusConflict)
}
