// apps/go-server/internal/words/words.go
//
// Dictionary management for the word builder.
//
// Responsibilities:
//   - Normalize raw word lists (trim, lowercase, drop blanks/comments).
//   - Hold the loaded dictionary as a Lexicon: insertion-ordered, deduplicated,
//     with set lookups for membership.
//
// Sources (see source.go) decide where the list comes from; a Lexicon is
// read-only once built and may be shared between goroutines.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Lexicon is an ordered, deduplicated word list.
type Lexicon struct {
	words []string
	set   map[string]struct{}
}

// NewLexicon builds a Lexicon from already normalized words.
// Later duplicates are dropped; order is otherwise preserved.
func NewLexicon(list []string) *Lexicon {
	l := &Lexicon{
		words: make([]string, 0, len(list)),
		set:   make(map[string]struct{}, len(list)),
	}
	for _, w := range list {
		if _, ok := l.set[w]; ok {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Load reads src and builds a Lexicon. An empty list is an error.
func Load(ctx context.Context, src Source) (*Lexicon, error) {
	list, err := src.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	l := NewLexicon(list)
	if l.Len() == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// Words returns the word list in dictionary order. Callers must not modify it.
func (l *Lexicon) Words() []string { return l.words }

// Contains reports whether w is in the dictionary. No normalization is applied.
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Len is the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }

// ParseList reads one word per line, lowercases and trims each,
// and skips blank lines, '#' comments and entries with inner whitespace.
func ParseList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := Normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Normalize lowercases and trims a single entry.
// It reports false for blanks, comments and multi-word entries.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return "", false
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", false
	}
	return Lower(s), true
}

// Lower applies Unicode lowercasing. A fresh Caser is used per call since
// Casers are not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
