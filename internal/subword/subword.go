// apps/go-server/internal/subword/subword.go
//
// Subword matching and candidate enumeration for the word-builder game.
// Responsibilities:
//   - IsMadeFromBase: can a word be spelled from a base word's letters,
//     using each letter at most as often as it appears in the base?
//   - Candidates: every dictionary word that passes IsMadeFromBase and the
//     length bounds [minLength, len(base)].
//
// Both functions are pure. Inputs are expected to be normalized by the
// caller; nothing here lowercases or trims.

// Package subword decides which words can be spelled from the letters of a base word.
package subword

import "unicode/utf8"

// DefaultMinLength is the shortest word accepted as a find.
const DefaultMinLength = 3

// IsMadeFromBase reports whether word can be formed from the letters of base.
// The empty word is always made from base.
func IsMadeFromBase(word, base string) bool {
	return consume(NewMultiset(base), word)
}

// Candidates returns the distinct dictionary words that can be made from base
// and whose length lies in [minLength, len(base)], in first-seen order.
// A minLength below 1 is treated as 1. The result is never nil.
func Candidates(base string, dictionary []string, minLength int) []string {
	if minLength < 1 {
		minLength = 1
	}
	maxLength := utf8.RuneCountInString(base)
	letters := NewMultiset(base)

	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, w := range dictionary {
		n := utf8.RuneCountInString(w)
		if n < minLength || n > maxLength {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		if !consume(letters.Clone(), w) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// consume takes each rune of word from letters, failing on the first miss.
func consume(letters Multiset, word string) bool {
	for _, r := range word {
		if !letters.Take(r) {
			return false
		}
	}
	return true
}
