package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tatianab/school-days/internal/autoplay"
	"github.com/tatianab/school-days/internal/config"
	"github.com/tatianab/school-days/internal/story"
	"github.com/tatianab/school-days/internal/tui"
	"github.com/tatianab/school-days/internal/wordlist"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		WordsFile: filepath.Join(t.TempDir(), "missing.txt"),
		LogLevel:  "warn",
		Seed:      7,
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		gpa  float64
		want string
	}{
		{4.0, "honor roll"},
		{3.5, "honor roll"},
		{3.49, "Great work"},
		{3.0, "Great work"},
		{2.5, "Good effort"},
		{2.49, "Keep studying"},
		{0, "Keep studying"},
	}
	for _, tt := range tests {
		if got := Verdict(tt.gpa); !strings.Contains(got, tt.want) {
			t.Errorf("Verdict(%v) = %q, want it to mention %q", tt.gpa, got, tt.want)
		}
	}
}

func TestNewFallsBackToBuiltInWords(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	g, err := New(context.Background(), testConfig(t), logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	if len(g.words) != len(wordlist.Fallback()) {
		t.Errorf("Expected the built-in corpus, got %d words", len(g.words))
	}
	if g.Seed() != 7 {
		t.Errorf("Expected seed 7, got %d", g.Seed())
	}
	out := logs.String()
	if !strings.Contains(out, "using built-in words") || !strings.Contains(out, "session="+g.SessionID()) {
		t.Errorf("Expected a fallback warning tagged with the session:\n%s", out)
	}
}

func TestNewRejectsBrokenStory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	doc := "nodes:\n  - id: start\n    choices:\n      - label: Go\n        target: nowhere\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)
	cfg.StoryFile = path
	if _, err := New(context.Background(), cfg, quietLogger()); !errors.Is(err, story.ErrInvalidGraph) {
		t.Errorf("Expected ErrInvalidGraph, got %v", err)
	}
}

func TestSessionWithBot(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReportCard = filepath.Join(t.TempDir(), "card.pdf")
	g, err := New(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bot := autoplay.New(rand.New(rand.NewPCG(1, 2)), g.words, 0.8)
	s, err := g.NewSession(bot, "Robin")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := s.Play(context.Background(), bot); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.Player.Name() != "Robin" || len(s.Player.ChoicesMade()) == 0 {
		t.Errorf("Unexpected player after play: %v", s.Player)
	}

	var out bytes.Buffer
	if err := g.ending(tui.New(strings.NewReader(""), &out, true), s); err != nil {
		t.Fatalf("ending: %v", err)
	}
	for _, want := range []string{"GAME OVER", "Your final GPA:", "Report card saved"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected ending to contain %q:\n%s", want, out.String())
		}
	}
	if info, err := os.Stat(cfg.ReportCard); err != nil || info.Size() == 0 {
		t.Errorf("Expected a report card at %s (%v)", cfg.ReportCard, err)
	}
}

func TestPlayInterrupted(t *testing.T) {
	g, err := New(context.Background(), testConfig(t), quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out bytes.Buffer
	c := tui.New(strings.NewReader("\n\n   \nSam\n"), &out, true)
	if err := g.Play(context.Background(), c); !errors.Is(err, tui.ErrInterrupted) {
		t.Fatalf("Expected ErrInterrupted, got %v", err)
	}
	for _, want := range []string{"Please enter a valid name.", "Welcome, Sam!", "Quick Instructions"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "game.log")}
	logger, closer, err := NewLogger(cfg, io.Discard)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") || strings.Contains(string(data), "hidden") {
		t.Errorf("Unexpected log file contents:\n%s", data)
	}

	if _, _, err := NewLogger(&config.Config{LogLevel: "loud"}, io.Discard); err == nil {
		t.Error("Expected a bad level error")
	}
}
