package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9090
gemini:
  model: gemini-test
catalog:
  source: mysql
database:
  host: db.local
  port: 3306
  username: portal
  password: secret
  database: gtm
  parse_time: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg := LoadFrom(path)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "gemini-test", cfg.Gemini.Model)
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, "mysql", cfg.Catalog.Source)
	assert.Equal(t, "portal:secret@tcp(db.local:3306)/gtm?charset=utf8mb4&parseTime=true", cfg.DB.DSN)
	assert.Equal(t, 40, cfg.Assistant.HistoryWarnTurns)
}

func TestLoadFromMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CATALOG_SOURCE", "")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "memory", cfg.Catalog.Source)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.DB.DSN)
}
