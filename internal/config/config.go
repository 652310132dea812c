package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerload/internal/id"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "ledgerload.yaml"

// Config represents the top-level ledgerload.yaml configuration.
type Config struct {
	Accounts      PipelineConfig `yaml:"accounts"`
	Journals      PipelineConfig `yaml:"journals"`
	JournalPrefix string         `yaml:"journal_prefix"`
	Sheet         string         `yaml:"sheet,omitempty"` // xlsx worksheet, empty = first
	Database      DatabaseConfig `yaml:"database"`
	Log           LogConfig      `yaml:"log"`
	RunLog        string         `yaml:"run_log,omitempty"` // CSV audit trail, empty = off
}

// PipelineConfig names the input export and generated SQL file of a pipeline.
type PipelineConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// DatabaseConfig controls direct loading.
type DatabaseConfig struct {
	URL string `yaml:"url,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format,omitempty"` // "console" (default) or "json"
}

// Load reads a ledgerload.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, returning defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the conventional export and output names.
func Default() *Config {
	return &Config{
		Accounts: PipelineConfig{
			Input:  "accounts.csv",
			Output: "accounts_insert.sql",
		},
		Journals: PipelineConfig{
			Input:  "journals.csv",
			Output: "journals_insert.sql",
		},
		JournalPrefix: id.DefaultJournalPrefix,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyEnv loads envFile (ignored when missing) and overrides settings from
// LEDGERLOAD_DATABASE_URL, DATABASE_URL and LEDGERLOAD_LOG_LEVEL.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if url := os.Getenv("LEDGERLOAD_DATABASE_URL"); url != "" {
		c.Database.URL = url
	} else if url := os.Getenv("DATABASE_URL"); url != "" && c.Database.URL == "" {
		c.Database.URL = url
	}
	if lvl := os.Getenv("LEDGERLOAD_LOG_LEVEL"); lvl != "" {
		c.Log.Level = lvl
	}
	return nil
}
