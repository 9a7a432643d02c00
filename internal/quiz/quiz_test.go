package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackToDefaults(t *testing.T) {
	q := New(nil)
	assert.Equal(t, len(DefaultQuestions), q.Len())
	assert.Equal(t, DefaultQuestions[0], q.Current())
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{"existing blank", Question{"The study of motion is called ____.", "kinetics"}, "The study of motion is called ____."},
		{"answer blanked", Question{"Abstract ideas are abstract.", "abstract"}, "_____ ideas are abstract."},
		{"regexp metachars", Question{"Use a.b here", "a.b"}, "Use _____ here"},
		{"answer absent", Question{"Nothing to hide.", "secret"}, "Nothing to hide."},
		{"empty answer", Question{"Nothing to hide.", ""}, "Nothing to hide."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New([]Question{tt.q}).Prompt())
		})
	}
}

func TestCheckScores(t *testing.T) {
	q := New([]Question{{Sentence: "A ____ test.", Answer: "Quick"}})

	r := q.Check("slow")
	assert.False(t, r.Correct)
	assert.Equal(t, "Quick", r.Answer)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 1, r.Attempts)

	r = q.Check("  QUICK ")
	assert.True(t, r.Correct)
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, 2, r.Attempts)
}

func TestNextWraps(t *testing.T) {
	qs := []Question{{"one ____", "a"}, {"two ____", "b"}}
	q := New(qs)
	q.Next()
	require.Equal(t, 1, q.Index())
	assert.Equal(t, "b", q.Current().Answer)
	q.Next()
	assert.Equal(t, 0, q.Index())
}

func TestNewCopiesQuestions(t *testing.T) {
	qs := []Question{{"one ____", "a"}}
	q := New(qs)
	qs[0].Answer = "changed"
	assert.Equal(t, "a", q.Current().Answer)
}
