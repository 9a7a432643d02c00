// apps/go-server/internal/game/types.go
//
// Core type definitions for the word-builder game.
// Defines:
//   - Round: state of one round (base word, candidates, finds, score).
//   - Submit rejection errors.

package game

import (
	"errors"
	"time"
)

// Submit rejections. Each maps to a message shown to the player.
var (
	ErrEmptyWord       = errors.New("enter a word")
	ErrAlreadyFound    = errors.New("already found")
	ErrNotFromBase     = errors.New("only use letters from the base word")
	ErrTooShort        = errors.New("word too short")
	ErrNotInDictionary = errors.New("not in the word list")
)

// Round holds the state of a single word-builder round. A new round replaces
// the previous one wholesale; Candidates never changes after NewRound.
type Round struct {
	ID         string    // Unique round identifier.
	Base       string    // Base word whose letters may be used.
	MinLength  int       // Shortest accepted find.
	Candidates []string  // Valid finds, dictionary order.
	Found      []string  // Accepted finds, submission order.
	Score      int       // One point per find.
	StartedAt  time.Time // Round creation time (UTC).

	candidates map[string]struct{}
	found      map[string]struct{}
}
