// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the word-builder backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless word checks: GET /check, GET /subwords.
//   - Session-bound games: /round/*, /daily/*, /quiz/*; DELETE /session forgets the caller.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the session cookie works).
//   - Every game route runs behind withSession; see session.go.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/content"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/store"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/subword"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/words"
)

// Options carries the server settings taken from config.Config.
type Options struct {
	ClientOrigin  string
	SessionSecret string
	SessionTTL    time.Duration
	Secure        bool // production cookies (Secure, SameSite=None)
	DailySalt     string
	MinWordLength int
	Now           func() time.Time // clock for the daily word; time.Now when nil
}

// Server bundles router, session store, dictionary and content.
type Server struct {
	r       *chi.Mux
	store   store.Store
	lex     *words.Lexicon
	content *content.Content
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, lex *words.Lexicon, c *content.Content, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MinWordLength < 1 {
		opts.MinWordLength = subword.DefaultMinLength
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, lex: lex, content: c, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordbuilder-go",
			"endpoints": []string{"/health", "POST /round/new", "POST /round/submit", "POST /daily/new", "/quiz"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", s.handleStats)

	// Stateless checks against the loaded dictionary.
	s.r.Get("/check", s.handleCheck)
	s.r.Get("/subwords", s.handleSubwords)

	// Session-bound games.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Delete("/session", s.handleEndSession)
		s.mountRound(r)
		s.mountDaily(r)
		s.mountQuiz(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

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

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ stateless ----------------------------------

type statsRes struct {
	Dictionary int `json:"dictionary"`
	BaseWords  int `json:"baseWords"`
	Questions  int `json:"questions"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsRes{
		Dictionary: s.lex.Len(),
		BaseWords:  len(s.content.BaseWords),
		Questions:  len(s.content.Questions),
	})
}

type checkRes struct {
	Base         string `json:"base"`
	Word         string `json:"word"`
	OK           bool   `json:"ok"`
	InDictionary bool   `json:"inDictionary"`
}

// handleCheck exposes the matcher as-is: no normalization is applied.
// inDictionary reports exact membership in the loaded word list.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	base, word := q.Get("base"), q.Get("word")
	if base == "" {
		writeError(w, http.StatusBadRequest, "missing_base")
		return
	}
	writeJSON(w, http.StatusOK, checkRes{
		Base:         base,
		Word:         word,
		OK:           subword.IsMadeFromBase(word, base),
		InDictionary: s.lex.Contains(word),
	})
}

type subwordsRes struct {
	Base  string   `json:"base"`
	Min   int      `json:"min"`
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// handleSubwords enumerates dictionary words made from base.
func (s *Server) handleSubwords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	base := q.Get("base")
	if base == "" {
		writeError(w, http.StatusBadRequest, "missing_base")
		return
	}
	minLen := s.opts.MinWordLength
	if v := q.Get("min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_min")
			return
		}
		minLen = n
	}
	list := subword.Candidates(base, s.lex.Words(), minLen)
	writeJSON(w, http.StatusOK, subwordsRes{Base: base, Min: minLen, Count: len(list), Words: list})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// decodeBody decodes an optional JSON body; an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
