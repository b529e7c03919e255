package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	Model        string `env:"SCHOOLDAYS_MODEL"       envDefault:"gemini-2.5-flash"`
	WordsFile    string `env:"SCHOOLDAYS_WORDS_FILE"  envDefault:"data/words.txt"`
	StoryFile    string `env:"SCHOOLDAYS_STORY_FILE"`
	LogLevel     string `env:"SCHOOLDAYS_LOG_LEVEL"   envDefault:"warn"`
	LogFile      string `env:"SCHOOLDAYS_LOG_FILE"`
	Seed         uint64 `env:"SCHOOLDAYS_SEED"`
	Plain        bool   `env:"SCHOOLDAYS_PLAIN"`
	ReportCard   string `env:"SCHOOLDAYS_REPORT_CARD"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.GeminiAPIKey != "" && c.Model == "" {
		errs = append(errs, errors.New("SCHOOLDAYS_MODEL must be set when GEMINI_API_KEY is"))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("SCHOOLDAYS_LOG_LEVEL: %w", err)
	}
	return l, nil
}

// GenerateQuestions reports whether Gemini question generation is enabled.
func (c *Config) GenerateQuestions() bool {
	return c.GeminiAPIKey != ""
}
