// apps/go-server/internal/httpserver/routes_daily.go
//
// "Word of the day" routes:
//   - GET  /daily     → today's date key and base word
//   - POST /daily/new → start a round on today's base word
//
// Selection is deterministic per UTC date: every player gets the same base
// word (keyed hash of the date, salted with DAILY_SALT).

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/daily"
)

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDaily)
		r.Post("/new", s.handleDailyNew)
	})
}

// today returns today's date key and base word ("" when no base words are configured).
func (s *Server) today() (date, base string) {
	now := s.opts.Now()
	return daily.DateKey(now), daily.Base(now, s.opts.DailySalt, s.content.BaseWords)
}

type dailyRes struct {
	Date string `json:"date"`
	Base string `json:"base"`
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date, base := s.today()
	if base == "" {
		writeError(w, http.StatusInternalServerError, "no_base_words")
		return
	}
	writeJSON(w, http.StatusOK, dailyRes{Date: date, Base: base})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, base := s.today()
	if base == "" {
		writeError(w, http.StatusInternalServerError, "no_base_words")
		return
	}
	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()

	res := viewRound(s.startRound(sess, base))
	res.Date = date
	writeJSON(w, http.StatusOK, res)
}
