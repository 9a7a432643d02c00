package words

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	in := strings.Join([]string{
		"  Teach ",
		"",
		"# comment",
		"cheat",
		"ice cream",
		"\tÉTÉ",
		"cheat",
	}, "\n")

	got, err := ParseList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"teach", "cheat", "été", "cheat"}, got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Word", "word", true},
		{"  spaced  ", "spaced", true},
		{"", "", false},
		{"   ", "", false},
		{"#note", "", false},
		{"two words", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexiconDedupKeepsOrder(t *testing.T) {
	l := NewLexicon([]string{"tea", "eat", "tea", "ace", "eat"})
	assert.Equal(t, []string{"tea", "eat", "ace"}, l.Words())
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains("ace"))
	assert.False(t, l.Contains("Ace"))
	assert.False(t, l.Contains("cat"))
}

func TestLoad(t *testing.T) {
	src := SourceFunc(func(ctx context.Context) ([]string, error) {
		return []string{"tea", "tea", "teach"}, nil
	})
	l, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"tea", "teach"}, l.Words())
}

func TestLoadEmpty(t *testing.T) {
	src := SourceFunc(func(ctx context.Context) ([]string, error) { return nil, nil })
	_, err := Load(context.Background(), src)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadSourceError(t *testing.T) {
	boom := errors.New("boom")
	src := SourceFunc(func(ctx context.Context) ([]string, error) { return nil, boom })
	_, err := Load(context.Background(), src)
	assert.ErrorIs(t, err, boom)
}
