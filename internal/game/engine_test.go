package game

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/words"
)

func testLexicon() *words.Lexicon {
	return words.NewLexicon([]string{"tea", "teach", "eat", "cheat", "teacher", "reach", "ace", "at", "cat", "zebra"})
}

func TestNewRound(t *testing.T) {
	r := NewRound("teacher", testLexicon(), 3)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "teacher", r.Base)
	assert.Equal(t, []string{"tea", "teach", "eat", "cheat", "teacher", "reach", "ace", "cat"}, r.Candidates)
	assert.Equal(t, 8, r.Count())
	assert.Empty(t, r.Found)
	assert.Zero(t, r.Score)
}

func TestNewRoundDefaultsMinLength(t *testing.T) {
	r := NewRound("teacher", testLexicon(), 0)
	assert.Equal(t, 3, r.MinLength)
	assert.NotContains(t, r.Candidates, "at")
}

func TestNewRoundNilLexicon(t *testing.T) {
	r := NewRound("teacher", nil, 3)
	assert.Zero(t, r.Count())
	assert.True(t, r.Complete())
}

func TestSubmit(t *testing.T) {
	r := NewRound("teacher", testLexicon(), 3)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "   ", ErrEmptyWord},
		{"accepted and normalized", "  TeAcH ", nil},
		{"already found", "teach", ErrAlreadyFound},
		{"letters outside base", "zebra", ErrNotFromBase},
		{"too short", "at", ErrTooShort},
		{"made from base but unknown", "arch", ErrNotInDictionary},
		{"base word itself", "teacher", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Submit(tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, []string{"teach", "teacher"}, r.Found)
	assert.Equal(t, 2, r.Score)
}

func TestCheckDoesNotRecord(t *testing.T) {
	r := NewRound("teacher", testLexicon(), 3)
	w, err := r.Check(" Cheat ")
	require.NoError(t, err)
	assert.Equal(t, "cheat", w)
	assert.Empty(t, r.Found)
	assert.Zero(t, r.Score)
	_, err = r.Check("cats")
	assert.ErrorIs(t, err, ErrNotFromBase)
}

func TestCheckNormalizesUnicode(t *testing.T) {
	r := NewRound("straße", words.NewLexicon([]string{"straße", "aß"}), 2)
	w, err := r.Check("STRAẞE")
	require.NoError(t, err)
	assert.Equal(t, "straße", w)
}

func TestMissedAndComplete(t *testing.T) {
	r := NewRound("cat", words.NewLexicon([]string{"cat", "act", "tac"}), 3)
	_, err := r.Submit("act")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "tac"}, r.Missed())
	assert.False(t, r.Complete())

	_, _ = r.Submit("cat")
	_, _ = r.Submit("tac")
	assert.Empty(t, r.Missed())
	assert.True(t, r.Complete())
}

func TestShuffledKeepsLetters(t *testing.T) {
	r := NewRound("balloon", nil, 3)
	got := r.Shuffled()
	assert.Equal(t, strings.ToUpper(got), got)
	assert.Equal(t, sortLetters("BALLOON"), sortLetters(got))
}

func TestPickBase(t *testing.T) {
	assert.Equal(t, "", PickBase(nil))
	bases := []string{"abstract", "diligent", "kinetics"}
	for i := 0; i < 20; i++ {
		assert.Contains(t, bases, PickBase(bases))
	}
}

func sortLetters(s string) string {
	rs := []rune(s)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}
