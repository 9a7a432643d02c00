// apps/go-server/internal/words/source.go
//
// Dictionary sources. Each returns the raw, normalized word list in order.
//
// Selection (Select):
//   1. DSN set  → SQLite database (words table). An empty table is seeded
//                 from the file when one is configured, else the embedded list.
//   2. URL set  → plain-text list fetched over HTTP.
//   3. File set → plain-text list on disk.
//   4. Otherwise the embedded default list.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordbuilder/apps/go-server/assets"
)

// Source yields an ordered list of normalized dictionary words.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]string, error)

// Words calls f.
func (f SourceFunc) Words(ctx context.Context) ([]string, error) { return f(ctx) }

// SourceConfig names the configured dictionary locations.
type SourceConfig struct {
	DSN  string
	URL  string
	File string
}

// Select returns the source matching cfg. The caller owns the returned
// closer, which is non-nil only for database sources.
func Select(ctx context.Context, cfg SourceConfig) (Source, func() error, error) {
	switch {
	case cfg.DSN != "":
		db, err := OpenSQLite(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		var seed Source = EmbeddedSource{}
		if cfg.File != "" {
			seed = FileSource{Path: cfg.File}
		}
		if _, err := Seed(ctx, db, seed); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info().Str("dsn", cfg.DSN).Msg("dictionary from sqlite")
		return SQLSource{DB: db}, db.Close, nil
	case cfg.URL != "":
		log.Info().Str("url", cfg.URL).Msg("dictionary from http")
		return NewHTTPSource(cfg.URL), nil, nil
	case cfg.File != "":
		log.Info().Str("file", cfg.File).Msg("dictionary from file")
		return FileSource{Path: cfg.File}, nil, nil
	default:
		log.Info().Msg("dictionary from embedded default")
		return EmbeddedSource{}, nil, nil
	}
}

// EmbeddedSource reads the word list compiled into the binary.
type EmbeddedSource struct{}

// Words implements Source.
func (EmbeddedSource) Words(ctx context.Context) ([]string, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, fmt.Errorf("open embedded dictionary: %w", err)
	}
	defer f.Close()
	return ParseList(f)
}

// FileSource reads a word list from disk.
type FileSource struct {
	Path string
}

// Words implements Source.
func (s FileSource) Words(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseList(f)
}

// HTTPSource fetches a plain-text word list.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Retry  time.Duration // pause before the single retry
}

// NewHTTPSource returns an HTTPSource with a bounded client.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Retry:  500 * time.Millisecond,
	}
}

// Words implements Source. Network errors and 5xx responses are retried once.
func (s *HTTPSource) Words(ctx context.Context) ([]string, error) {
	resp, err := s.get(ctx)
	if err != nil || resp.StatusCode >= 500 {
		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn().Str("url", s.URL).Str("reason", reason).Msg("dictionary fetch retry")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Retry):
		}
		resp, err = s.get(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dictionary: unexpected status %d", resp.StatusCode)
	}
	return ParseList(resp.Body)
}

func (s *HTTPSource) get(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}

// SQLSource reads the words table in insertion order.
type SQLSource struct {
	DB *sql.DB
}

// Words implements Source.
func (s SQLSource) Words(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT word FROM words ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
