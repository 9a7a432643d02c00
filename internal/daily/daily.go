// Package daily picks the word-of-the-day base word.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BaseIndex returns a deterministic index for a date using a BLAKE2b MAC of
// the date key, keyed by salt, modulo n. It returns 0 when n <= 0.
func BaseIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	// blake2b keys are capped at 64 bytes; hash the salt to fit any length.
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		return 0
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Base returns the base word for date, or "" when bases is empty.
func Base(date time.Time, salt string, bases []string) string {
	if len(bases) == 0 {
		return ""
	}
	return bases[BaseIndex(date, salt, len(bases))]
}
