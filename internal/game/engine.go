// apps/go-server/internal/game/engine.go
//
// Game engine for a single word-builder round.
// Responsibilities:
//   - Create rounds: pick a base word, compute its candidate set once.
//   - Validate and apply submissions (normalize, rule checks, scoring).
//   - Reveal missed words and shuffle the base letters.
//
// Notes:
//   - The dictionary is provided by the words package.
//   - Matching rules live in the subword package; this file only orders the
//     checks and keeps score.

package game

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/subword"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/words"
)

// NewRound starts a round on base using lex as the dictionary.
// A minLength below 1 falls back to subword.DefaultMinLength.
func NewRound(base string, lex *words.Lexicon, minLength int) *Round {
	if minLength < 1 {
		minLength = subword.DefaultMinLength
	}
	var dict []string
	if lex != nil {
		dict = lex.Words()
	}
	cands := subword.Candidates(base, dict, minLength)

	r := &Round{
		ID:         uuid.NewString(),
		Base:       base,
		MinLength:  minLength,
		Candidates: cands,
		Found:      []string{},
		StartedAt:  time.Now().UTC(),
		candidates: make(map[string]struct{}, len(cands)),
		found:      make(map[string]struct{}),
	}
	for _, w := range cands {
		r.candidates[w] = struct{}{}
	}
	return r
}

// PickBase returns a cryptographically random entry of bases, or "" if empty.
func PickBase(bases []string) string {
	if len(bases) == 0 {
		return ""
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(bases))))
	return bases[n.Int64()]
}

// Submit validates raw and, when accepted, records it and adds a point.
// It returns the normalized word together with nil or a rejection error.
//
// Checks, in order: empty, already found, letters outside the base,
// too short, not a candidate.
func (r *Round) Submit(raw string) (string, error) {
	w := normalize(raw)
	if err := r.check(w); err != nil {
		return w, err
	}
	r.found[w] = struct{}{}
	r.Found = append(r.Found, w)
	r.Score++
	return w, nil
}

// Check runs the Submit rules on raw without recording anything and
// returns the normalized word it checked.
func (r *Round) Check(raw string) (string, error) {
	w := normalize(raw)
	return w, r.check(w)
}

func (r *Round) check(w string) error {
	if w == "" {
		return ErrEmptyWord
	}
	if _, ok := r.found[w]; ok {
		return ErrAlreadyFound
	}
	if !subword.IsMadeFromBase(w, r.Base) {
		return ErrNotFromBase
	}
	if utf8.RuneCountInString(w) < r.MinLength {
		return ErrTooShort
	}
	if _, ok := r.candidates[w]; !ok {
		return ErrNotInDictionary
	}
	return nil
}

// Count is the number of valid finds for this round.
func (r *Round) Count() int { return len(r.Candidates) }

// Missed lists the candidates not found yet, in candidate order.
func (r *Round) Missed() []string {
	out := make([]string, 0, len(r.Candidates)-len(r.Found))
	for _, w := range r.Candidates {
		if _, ok := r.found[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// Complete reports whether every candidate has been found.
func (r *Round) Complete() bool { return len(r.Found) == len(r.Candidates) }

// Shuffled returns the base letters in random order, upper-cased.
func (r *Round) Shuffled() string {
	return strings.ToUpper(shuffle(r.Base))
}

// shuffle is a Fisher–Yates shuffle over runes.
func shuffle(s string) string {
	rs := []rune(s)
	mrand.Shuffle(len(rs), func(i, j int) { rs[i], rs[j] = rs[j], rs[i] })
	return string(rs)
}

func normalize(s string) string {
	return words.Lower(strings.TrimSpace(s))
}
