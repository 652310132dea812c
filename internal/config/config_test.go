package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.JournalPrefix = "PD-"
	cfg.Sheet = "Partidas"
	cfg.Database.URL = "postgres://localhost/ledger"
	cfg.RunLog = "logs/run-log.csv"
	cfg.Log.Format = "json"

	path := filepath.Join(t.TempDir(), "ledgerload.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "accounts.csv", cfg.Accounts.Input)
	assert.Equal(t, "accounts_insert.sql", cfg.Accounts.Output)
	assert.Equal(t, "journals.csv", cfg.Journals.Input)
	assert.Equal(t, "journals_insert.sql", cfg.Journals.Output)
	assert.Equal(t, "MY-", cfg.JournalPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.RunLog)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerload.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journals:\n  input: partidas.xlsx\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "partidas.xlsx", cfg.Journals.Input)
	assert.Equal(t, "accounts.csv", cfg.Accounts.Input)
	assert.Equal(t, "MY-", cfg.JournalPrefix)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerload.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts: [unclosed\n"), 0o644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerload.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "input: accounts.csv")
	assert.Contains(t, contents, "journal_prefix: MY-")
	assert.Contains(t, contents, "level: info")
	assert.NotContains(t, contents, "run_log")
	assert.NotContains(t, contents, "format")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LEDGERLOAD_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "postgres://fallback/db")
	t.Setenv("LEDGERLOAD_LOG_LEVEL", "")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "postgres://fallback/db", cfg.Database.URL)

	cfg = Default()
	cfg.Database.URL = "postgres://from-file/db"
	require.NoError(t, cfg.ApplyEnv(""))
	assert.Equal(t, "postgres://from-file/db", cfg.Database.URL, "DATABASE_URL does not override the file")

	t.Setenv("LEDGERLOAD_DATABASE_URL", "postgres://explicit/db")
	require.NoError(t, cfg.ApplyEnv(""))
	assert.Equal(t, "postgres://explicit/db", cfg.Database.URL)
}

func TestApplyEnvFile(t *testing.T) {
	t.Setenv("LEDGERLOAD_DATABASE_URL", "")
	t.Setenv("LEDGERLOAD_LOG_LEVEL", "")
	os.Unsetenv("LEDGERLOAD_LOG_LEVEL")
	os.Unsetenv("LEDGERLOAD_DATABASE_URL")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEDGERLOAD_LOG_LEVEL=debug\n"), 0o644))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envFile))
	assert.Equal(t, "debug", cfg.Log.Level)
}
