// apps/go-server/assets/embed.go
//
// Files compiled into the server binary:
//   - dictionary.txt: default word list for the word builder.
//   - content.yaml:   default base words and quiz questions.
//   - sql/*.sql:      schema for the optional SQLite dictionary.

package assets

import (
	"embed"
	"io"
)

//go:embed dictionary.txt content.yaml sql/*.sql
var FS embed.FS

// Dictionary opens the embedded word list.
func Dictionary() (io.ReadCloser, error) {
	return FS.Open("dictionary.txt")
}

// Content returns the embedded content document.
func Content() ([]byte, error) {
	return FS.ReadFile("content.yaml")
}
