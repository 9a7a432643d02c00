// apps/go-server/internal/subword/multiset.go
//
// Letter multiset used by the subword matcher.
//
// Notes:
//   - Lowercase ASCII letters live in a fixed [26]int, everything else in a
//     lazily allocated overflow map. No rune is normalized: 'A' and 'a' are
//     different letters.
//   - A Multiset is consumed by Take; callers that reuse one must Clone it.

package subword

// Multiset counts the remaining occurrences of each letter.
type Multiset struct {
	ascii [26]int
	other map[rune]int
}

// NewMultiset builds the multiset of the runes in s.
func NewMultiset(s string) Multiset {
	var m Multiset
	for _, r := range s {
		m.add(r)
	}
	return m
}

func (m *Multiset) add(r rune) {
	if i := idx(r); i >= 0 {
		m.ascii[i]++
		return
	}
	if m.other == nil {
		m.other = make(map[rune]int)
	}
	m.other[r]++
}

// Take removes one occurrence of r. It reports false, leaving m untouched,
// when none is left.
func (m *Multiset) Take(r rune) bool {
	if i := idx(r); i >= 0 {
		if m.ascii[i] == 0 {
			return false
		}
		m.ascii[i]--
		return true
	}
	if m.other[r] == 0 {
		return false
	}
	m.other[r]--
	return true
}

// Count returns the remaining occurrences of r.
func (m Multiset) Count(r rune) int {
	if i := idx(r); i >= 0 {
		return m.ascii[i]
	}
	return m.other[r]
}

// Clone returns an independent copy.
func (m Multiset) Clone() Multiset {
	c := Multiset{ascii: m.ascii}
	if len(m.other) > 0 {
		c.other = make(map[rune]int, len(m.other))
		for r, n := range m.other {
			c.other[r] = n
		}
	}
	return c
}

// idx maps 'a'..'z' to 0..25 and any other rune to -1.
func idx(r rune) int {
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}
