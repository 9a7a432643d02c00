// apps/go-server/internal/content/content.go
//
// Game content: the base words offered by the word builder and the question
// bank of the fill-in-the-blank quiz.
//
// Loading:
//   - CONTENT_FILE points at a YAML document with the same shape as
//     assets/content.yaml; when unset the embedded document is used.
//   - Base words must be lowercase a–z and at least 3 letters long.

package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/robalobadob/wordbuilder/apps/go-server/assets"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/quiz"
)

// MinBaseLength is the shortest allowed base word.
const MinBaseLength = 3

// Content is the parsed content document.
type Content struct {
	BaseWords []string        `yaml:"base_words"`
	Questions []quiz.Question `yaml:"questions"`
}

// Load reads the content document from path, or the embedded default when
// path is empty.
func Load(path string) (*Content, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = assets.Content()
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a content document.
func Parse(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	for _, b := range c.BaseWords {
		if !ValidBase(b) {
			return nil, fmt.Errorf("content: invalid base word %q", b)
		}
	}
	for i, q := range c.Questions {
		if q.Sentence == "" || q.Answer == "" {
			return nil, fmt.Errorf("content: question %d needs sentence and answer", i)
		}
	}
	return &c, nil
}

// ValidBase reports whether s is usable as a base word.
func ValidBase(s string) bool {
	if len(s) < MinBaseLength {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
