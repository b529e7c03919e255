// Package app wires configuration, content, mini-games and presentation
// into a playable school day.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tatianab/school-days/internal/config"
	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/models"
	"github.com/tatianab/school-days/internal/quizgen"
	"github.com/tatianab/school-days/internal/story"
	"github.com/tatianab/school-days/internal/wordlist"
)

// Presenter is everything a session talks to while the story runs.
type Presenter interface {
	story.Display
	story.ChoiceProvider
	minigame.IO
}

// Game holds the content shared by every session.
type Game struct {
	cfg     *config.Config
	logger  *slog.Logger
	graph   *story.Graph
	words   []string
	seed    uint64
	rng     *rand.Rand
	gen     *quizgen.Generator
	session string
	now     func() time.Time
}

// New loads the word list and story named by cfg. A missing word file
// falls back to the built-in corpus; a broken story is an error.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	session := uuid.NewString()
	logger = logger.With("session", session)

	words, fromFile, err := wordlist.Load(cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	if !fromFile {
		logger.Warn("word list not found, using built-in words", "path", cfg.WordsFile, "count", len(words))
	}

	graph, err := loadStory(cfg.StoryFile)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("game loaded", "nodes", graph.Len(), "words", len(words), "seed", seed)

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		graph:   graph,
		words:   words,
		seed:    seed,
		rng:     rand.New(rand.NewPCG(seed, seed^0x5eed)),
		session: session,
		now:     time.Now,
	}

	if cfg.GenerateQuestions() {
		gen, err := quizgen.New(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			logger.Warn("question generation disabled", "err", err)
		} else {
			g.gen = gen
		}
	}
	return g, nil
}

func loadStory(path string) (*story.Graph, error) {
	if path == "" {
		return story.SchoolDay()
	}
	return story.LoadFile(path)
}

// Close releases the question generator, if any.
func (g *Game) Close() {
	if g.gen != nil {
		g.gen.Close()
	}
}

// Seed returns the seed the game's randomness was derived from.
func (g *Game) Seed() uint64 { return g.seed }

// Words returns the word-puzzle vocabulary.
func (g *Game) Words() []string { return g.words }

// SessionID returns the id attached to every log line of this game.
func (g *Game) SessionID() string { return g.session }

// Session is one play of the school day.
type Session struct {
	Player   *models.Player
	Clock    *models.Clock
	Registry *minigame.Registry
	runner   *story.Runner
	start    string
}

// NewSession prepares a fresh player called name, presented through p.
func (g *Game) NewSession(p Presenter, name string) (*Session, error) {
	deps := minigame.Deps{
		IO:    p,
		Rand:  g.rng,
		Words: g.words,
		Now:   g.now,
	}
	if g.gen != nil {
		deps.Science = &minigame.FallbackSource{
			Primary:   g.gen.Source(quizgen.Science),
			Secondary: minigame.NewStaticSource(minigame.ScienceQuestions(), g.rng),
			Logger:    g.logger,
		}
		deps.Grammar = &minigame.FallbackSource{
			Primary:   g.gen.Source(quizgen.Grammar),
			Secondary: minigame.NewStaticSource(minigame.GrammarQuestions(), g.rng),
			Logger:    g.logger,
		}
	}
	reg, err := minigame.NewRegistry(g.logger, minigame.Standard(deps)...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Player:   models.NewPlayer(name),
		Clock:    models.NewClock(),
		Registry: reg,
		start:    g.graph.Start(),
	}
	env := story.Env{Player: s.Player, Clock: s.Clock, Minigames: reg}
	s.runner, err = story.NewRunner(g.graph, env, p, g.logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Play runs the story from its start node to an end node.
func (s *Session) Play(ctx context.Context, choices story.ChoiceProvider) error {
	return s.runner.Run(ctx, s.start, choices)
}

// Verdict is the closing remark for a final GPA.
func Verdict(gpa float64) string {
	switch {
	case gpa >= 3.5:
		return "Outstanding performance! You're on the honor roll!"
	case gpa >= 3.0:
		return "Great work! You're doing well!"
	case gpa >= 2.5:
		return "Good effort! Keep it up!"
	}
	return "Keep studying! You'll improve!"
}

// NewLogger builds the text logger described by cfg. The returned closer
// closes the log file, if one was opened.
func NewLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = stderr
	var closer io.Closer = io.NopCloser(nil)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closer, nil
}
