// apps/go-server/internal/httpserver/routes_quiz.go
//
// Fill-in-the-blank routes. Quiz progress lives in the caller's session and
// is created on first use from the configured question bank.
//   - GET  /quiz       → current prompt and score
//   - POST /quiz/check → grade an answer
//   - POST /quiz/next  → advance to the next question

package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/quiz"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/store"
)

func (s *Server) mountQuiz(r chi.Router) {
	r.Route("/quiz", func(r chi.Router) {
		r.Get("/", s.handleQuiz)
		r.Post("/check", s.handleQuizCheck)
		r.Post("/next", s.handleQuizNext)
	})
}

type quizRes struct {
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	Prompt   string `json:"prompt"`
	Score    int    `json:"score"`
	Attempts int    `json:"attempts"`
}

func viewQuiz(q *quiz.Quiz) quizRes {
	return quizRes{Index: q.Index(), Total: q.Len(), Prompt: q.Prompt(), Score: q.Score, Attempts: q.Attempts}
}

// sessionQuiz returns the session's quiz, creating it if needed. Caller holds the session lock.
func (s *Server) sessionQuiz(sess *store.Session) *quiz.Quiz {
	if sess.Quiz == nil {
		sess.Quiz = quiz.New(s.content.Questions)
	}
	sess.Touch()
	return sess.Quiz
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()
	writeJSON(w, http.StatusOK, viewQuiz(s.sessionQuiz(sess)))
}

type quizCheckReq struct {
	Answer string `json:"answer"`
}

type quizCheckRes struct {
	quiz.Result
	Message string `json:"message"`
}

func (s *Server) handleQuizCheck(w http.ResponseWriter, r *http.Request) {
	var req quizCheckReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()

	res := s.sessionQuiz(sess).Check(req.Answer)
	msg := "Correct!"
	if !res.Correct {
		msg = fmt.Sprintf("Incorrect. The answer is %q.", res.Answer)
	}
	writeJSON(w, http.StatusOK, quizCheckRes{Result: res, Message: msg})
}

func (s *Server) handleQuizNext(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()

	q := s.sessionQuiz(sess)
	q.Next()
	writeJSON(w, http.StatusOK, viewQuiz(q))
}
