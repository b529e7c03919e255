// Package minigame holds the scored classroom activities the story invokes.
// Every game presents itself through an IO, awards grade points for the
// subject it governs and marks itself completed exactly once per play.
package minigame

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/tatianab/school-days/internal/models"
	"github.com/tatianab/school-days/internal/wordlist"
)

const (
	WordPuzzleID  = "word_puzzle"
	SentenceFixID = "sentence_fix"
	TypingTestID  = "typing_test"
	MathQuizID    = "math_quiz"
	ScienceQuizID = "science_quiz"
)

// Tone selects how a line of output is styled.
type Tone int

const (
	TonePlain Tone = iota
	ToneTitle
	ToneInfo
	ToneSuccess
	ToneError
	ToneWarn
	ToneHighlight
)

// Guess is one scored row of the word puzzle.
type Guess struct {
	Word  string
	Hints []wordlist.Hint
}

// IO is the presentation a mini-game talks to. Select returns a validated
// 1-based index; invalid input is re-prompted by the implementation.
type IO interface {
	Print(tone Tone, text string)
	Ask(ctx context.Context, prompt string) (string, error)
	Select(ctx context.Context, prompt string, options []string) (int, error)
	Pause(ctx context.Context, message string) error
	ShowGuesses(guesses []Guess)
}

// Result is the outcome of one play.
type Result struct {
	ID      string
	Subject models.Subject
	Points  int
	Correct int
	Total   int
	Won     bool
}

// MiniGame is a scored activity.
type MiniGame interface {
	ID() string
	Subject() models.Subject
	Play(ctx context.Context, p *models.Player) (Result, error)
}

// Registry looks mini-games up by id for the story runner.
type Registry struct {
	games   map[string]MiniGame
	order   []string
	results []Result
	logger  *slog.Logger
}

func NewRegistry(logger *slog.Logger, games ...MiniGame) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{games: make(map[string]MiniGame, len(games)), logger: logger}
	for _, g := range games {
		if _, dup := r.games[g.ID()]; dup {
			return nil, fmt.Errorf("minigame: duplicate id %q", g.ID())
		}
		r.games[g.ID()] = g
		r.order = append(r.order, g.ID())
	}
	return r, nil
}

func (r *Registry) Has(id string) bool {
	_, ok := r.games[id]
	return ok
}

// IDs returns registered ids in registration order.
func (r *Registry) IDs() []string { return slices.Clone(r.order) }

// Play runs the mini-game with the given id and records its result.
func (r *Registry) Play(ctx context.Context, id string, p *models.Player) error {
	g, ok := r.games[id]
	if !ok {
		return fmt.Errorf("minigame: unknown id %q", id)
	}
	res, err := g.Play(ctx, p)
	if err != nil {
		return err
	}
	r.results = append(r.results, res)
	r.logger.Info("minigame played", "id", id, "points", res.Points, "correct", res.Correct, "total", res.Total)
	return nil
}

// Results returns every recorded result in play order.
func (r *Registry) Results() []Result { return slices.Clone(r.results) }

// Deps are the collaborators of the standard game set.
type Deps struct {
	IO      IO
	Rand    *rand.Rand
	Words   []string
	Science QuestionSource
	Grammar QuestionSource
	Now     func() time.Time
}

// Standard returns the five school-day mini-games. Nil question sources
// fall back to the built-in tables.
func Standard(d Deps) []MiniGame {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Science == nil {
		d.Science = NewStaticSource(ScienceQuestions(), d.Rand)
	}
	if d.Grammar == nil {
		d.Grammar = NewStaticSource(GrammarQuestions(), d.Rand)
	}
	return []MiniGame{
		NewWordPuzzle(d.IO, d.Rand, d.Words),
		NewSentenceFix(d.IO, d.Grammar, d.Rand),
		NewTypingTest(d.IO, d.Rand, d.Now),
		NewMathQuiz(d.IO, d.Rand),
		NewScienceQuiz(d.IO, d.Science, d.Rand),
	}
}

// finish awards points and marks the game complete.
func finish(p *models.Player, res Result) Result {
	p.AddGradePoints(res.Subject, res.Points)
	p.CompleteMinigame(res.ID)
	return res
}

func printResults(io IO, correct, total int) float64 {
	pct := percent(correct, total)
	io.Print(ToneHighlight, "Results:")
	io.Print(TonePlain, fmt.Sprintf("   Correct: %d/%d", correct, total))
	io.Print(ToneInfo, fmt.Sprintf("   Score: %.0f%%", pct))
	return pct
}

func percent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
