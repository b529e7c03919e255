package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"GEMINI_API_KEY", "SCHOOLDAYS_MODEL", "SCHOOLDAYS_WORDS_FILE", "SCHOOLDAYS_STORY_FILE",
		"SCHOOLDAYS_LOG_LEVEL", "SCHOOLDAYS_LOG_FILE", "SCHOOLDAYS_SEED", "SCHOOLDAYS_PLAIN",
		"SCHOOLDAYS_REPORT_CARD",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" || cfg.WordsFile != "data/words.txt" || cfg.LogLevel != "warn" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.GenerateQuestions() {
		t.Error("Expected question generation to be off without a key")
	}
	if l, _ := cfg.Level(); l != slog.LevelWarn {
		t.Errorf("Expected warn level, got %v", l)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("SCHOOLDAYS_MODEL", "gemini-2.5-pro")
	t.Setenv("SCHOOLDAYS_LOG_LEVEL", "DEBUG")
	t.Setenv("SCHOOLDAYS_SEED", "42")
	t.Setenv("SCHOOLDAYS_PLAIN", "true")
	t.Setenv("SCHOOLDAYS_REPORT_CARD", "card.pdf")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.GenerateQuestions() || cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Unexpected model settings: %+v", cfg)
	}
	if cfg.Seed != 42 || !cfg.Plain || cfg.ReportCard != "card.pdf" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", l)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SCHOOLDAYS_LOG_LEVEL", "chatty")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SCHOOLDAYS_LOG_LEVEL") {
		t.Errorf("Expected a log level error, got %v", err)
	}

	t.Setenv("SCHOOLDAYS_LOG_LEVEL", "info")
	t.Setenv("SCHOOLDAYS_SEED", "-1")
	if _, err := Load(); err == nil {
		t.Error("Expected a seed parse error")
	}
}
