// apps/go-server/internal/httpserver/routes_round.go
//
// Word-builder routes. The round lives in the caller's session.
//   - POST /round/new     → start a round (random base, or "base" in the body)
//   - GET  /round         → current round state
//   - POST /round/submit  → submit a word
//   - GET  /round/check   → validate a word without recording it
//   - POST /round/reveal  → list words not found yet
//   - GET  /round/shuffle → base letters in random order

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/content"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/game"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/store"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/words"
)

func (s *Server) mountRound(r chi.Router) {
	r.Route("/round", func(r chi.Router) {
		r.Post("/new", s.handleNewRound)
		r.Get("/", s.handleRound)
		r.Post("/submit", s.handleSubmit)
		r.Get("/check", s.handleRoundCheck)
		r.Post("/reveal", s.handleReveal)
		r.Get("/shuffle", s.handleShuffle)
	})
}

// roundRes is the public view of a round. Candidates stay hidden until reveal.
type roundRes struct {
	RoundID   string   `json:"roundId"`
	Base      string   `json:"base"`
	MinLength int      `json:"minLength"`
	Count     int      `json:"count"`
	Found     []string `json:"found"`
	Score     int      `json:"score"`
	Complete  bool     `json:"complete"`
	Date      string   `json:"date,omitempty"`
}

func viewRound(rd *game.Round) roundRes {
	return roundRes{
		RoundID:   rd.ID,
		Base:      rd.Base,
		MinLength: rd.MinLength,
		Count:     rd.Count(),
		Found:     rd.Found,
		Score:     rd.Score,
		Complete:  rd.Complete(),
	}
}

type newRoundReq struct {
	Base string `json:"base"` // optional fixed base word
}

// startRound replaces the session's round. Caller holds the session lock.
func (s *Server) startRound(sess *store.Session, base string) *game.Round {
	rd := game.NewRound(base, s.lex, s.opts.MinWordLength)
	sess.Round = rd
	sess.Touch()
	log.Info().Str("session", sess.ID).Str("round", rd.ID).Str("base", base).Int("candidates", rd.Count()).Msg("round started")
	return rd
}

func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	base := words.Lower(strings.TrimSpace(req.Base))
	if base == "" {
		base = game.PickBase(s.content.BaseWords)
		if base == "" {
			writeError(w, http.StatusInternalServerError, "no_base_words")
			return
		}
	} else if !content.ValidBase(base) {
		writeError(w, http.StatusBadRequest, "invalid_base")
		return
	}

	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()
	writeJSON(w, http.StatusOK, viewRound(s.startRound(sess, base)))
}

// currentRound returns the session's round after locking the session, or
// writes 404 and returns nil (unlocked).
func currentRound(w http.ResponseWriter, sess *store.Session) *game.Round {
	sess.Lock()
	if sess.Round == nil {
		sess.Unlock()
		writeError(w, http.StatusNotFound, "no_round")
		return nil
	}
	sess.Touch()
	return sess.Round
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	rd := currentRound(w, sess)
	if rd == nil {
		return
	}
	defer sess.Unlock()
	writeJSON(w, http.StatusOK, viewRound(rd))
}

type submitReq struct {
	Word string `json:"word"`
}

type submitRes struct {
	Word      string   `json:"word"`
	Accepted  bool     `json:"accepted"`
	Reason    string   `json:"reason,omitempty"`
	Message   string   `json:"message"`
	Score     int      `json:"score"`
	Found     []string `json:"found"`
	Remaining int      `json:"remaining"`
	Complete  bool     `json:"complete"`
}

// handleSubmit applies a word to the round. Rule rejections are a normal
// outcome and answer 200 with accepted=false.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess := sessionFrom(r.Context())
	rd := currentRound(w, sess)
	if rd == nil {
		return
	}
	defer sess.Unlock()

	word, err := rd.Submit(req.Word)
	res := submitRes{
		Word:      word,
		Accepted:  err == nil,
		Score:     rd.Score,
		Found:     rd.Found,
		Remaining: rd.Count() - len(rd.Found),
		Complete:  rd.Complete(),
	}
	switch {
	case err != nil:
		res.Reason, res.Message = rejection(err, word, rd.Base)
	case res.Complete:
		res.Message = "You found every word!"
		log.Info().Str("round", rd.ID).Int("score", rd.Score).Msg("round complete")
	default:
		res.Message = "Nice!"
		log.Debug().Str("round", rd.ID).Str("word", word).Int("score", rd.Score).Msg("word found")
	}
	writeJSON(w, http.StatusOK, res)
}

type roundCheckRes struct {
	Word    string `json:"word"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// handleRoundCheck validates ?word= as the player types, without scoring.
func (s *Server) handleRoundCheck(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("word")
	sess := sessionFrom(r.Context())
	rd := currentRound(w, sess)
	if rd == nil {
		return
	}
	defer sess.Unlock()

	word, err := rd.Check(raw)
	res := roundCheckRes{Word: word, Valid: true}
	if err != nil {
		res.Valid = false
		res.Reason, res.Message = rejection(err, word, rd.Base)
	}
	writeJSON(w, http.StatusOK, res)
}

type revealRes struct {
	Missed  []string `json:"missed"`
	Message string   `json:"message"`
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	rd := currentRound(w, sess)
	if rd == nil {
		return
	}
	defer sess.Unlock()
	writeJSON(w, http.StatusOK, revealRes{Missed: rd.Missed(), Message: "All words revealed!"})
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	rd := currentRound(w, sess)
	if rd == nil {
		return
	}
	defer sess.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"shuffled": rd.Shuffled()})
}

// rejection maps a game error to a reason code and player-facing message.
func rejection(err error, word, base string) (string, string) {
	switch {
	case errors.Is(err, game.ErrEmptyWord):
		return "empty", "Enter a word!"
	case errors.Is(err, game.ErrAlreadyFound):
		return "already_found", "Already found!"
	case errors.Is(err, game.ErrNotFromBase):
		return "not_from_base", fmt.Sprintf("Only use letters from %q!", base)
	case errors.Is(err, game.ErrTooShort):
		return "too_short", fmt.Sprintf("%q is too short.", word)
	case errors.Is(err, game.ErrNotInDictionary):
		return "not_in_dictionary", fmt.Sprintf("%q is not in the word list.", word)
	default:
		return "invalid", err.Error()
	}
}
