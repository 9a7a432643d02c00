package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 3, cfg.MinWordLength)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.Production())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MIN_WORD_LENGTH", "4")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("DICTIONARY_FILE", "/tmp/words.txt")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 4, cfg.MinWordLength)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "/tmp/words.txt", cfg.DictionaryFile)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DAILY_SALT=from_dotenv\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("DAILY_SALT") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.DailySalt)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MIN_WORD_LENGTH", "abc")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{MinWordLength: 3, SessionTTL: time.Hour, SessionSecret: "dev_secret_change_me"}
	assert.NoError(t, base.Validate())

	c := base
	c.MinWordLength = 0
	assert.Error(t, c.Validate())

	c = base
	c.AppEnv = "production"
	assert.Error(t, c.Validate())

	c.SessionSecret = "real-secret"
	assert.NoError(t, c.Validate())
}
