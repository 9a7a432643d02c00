// Package quiz runs the fill-in-the-blank vocabulary quiz.
package quiz

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Blank marks the gap in a sentence.
const Blank = "____"

// Question is a sentence with one vocabulary word left out.
type Question struct {
	Sentence string `yaml:"sentence" json:"sentence"`
	Answer   string `yaml:"answer" json:"answer"`
}

// DefaultQuestions is used when no question bank is configured.
var DefaultQuestions = []Question{
	{Sentence: "His theory was highly ____ and difficult for most people to grasp.", Answer: "abstract"},
	{Sentence: "The ____ teacher donated her bonus to help struggling students.", Answer: "benevolent"},
	{Sentence: "She was ____ in her studies, never missing a homework assignment.", Answer: "diligent"},
	{Sentence: "The study of motion is called ____.", Answer: "kinetics"},
}

// Quiz tracks progress through a question bank.
type Quiz struct {
	questions []Question
	index     int
	Score     int
	Attempts  int
}

// Result is the outcome of a single Check.
type Result struct {
	Correct  bool   `json:"correct"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
	Attempts int    `json:"attempts"`
}

// New starts a quiz on questions, or on DefaultQuestions when empty.
func New(questions []Question) *Quiz {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}
	return &Quiz{questions: append([]Question(nil), questions...)}
}

// Current returns the question being asked.
func (q *Quiz) Current() Question { return q.questions[q.index] }

// Index is the position of the current question.
func (q *Quiz) Index() int { return q.index }

// Len is the size of the question bank.
func (q *Quiz) Len() int { return len(q.questions) }

// Prompt returns the sentence shown to the player. Sentences without a
// blank get the first case-insensitive occurrence of the answer blanked.
func (q *Quiz) Prompt() string {
	return prompt(q.Current())
}

func prompt(qu Question) string {
	if qu.Answer == "" || strings.Contains(qu.Sentence, Blank) {
		return qu.Sentence
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(qu.Answer))
	loc := re.FindStringIndex(qu.Sentence)
	if loc == nil {
		return qu.Sentence
	}
	return qu.Sentence[:loc[0]] + "_____" + qu.Sentence[loc[1]:]
}

// Check grades answer against the current question.
func (q *Quiz) Check(answer string) Result {
	want := q.Current().Answer
	q.Attempts++
	ok := normalize(answer) == normalize(want)
	if ok {
		q.Score++
	}
	return Result{Correct: ok, Answer: want, Score: q.Score, Attempts: q.Attempts}
}

// Next moves to the following question, wrapping around.
func (q *Quiz) Next() {
	q.index = (q.index + 1) % len(q.questions)
}

func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
