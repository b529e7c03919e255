package minigame

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tatianab/school-days/internal/models"
	"github.com/tatianab/school-days/internal/wordlist"
)

type scriptIO struct {
	lines   []string
	ask     func(s *scriptIO, prompt string) (string, error)
	choose  func(s *scriptIO, options []string) int
	pauses  int
	guesses []Guess
}

func (s *scriptIO) Print(_ Tone, text string) { s.lines = append(s.lines, text) }

func (s *scriptIO) Ask(_ context.Context, prompt string) (string, error) {
	if s.ask == nil {
		return "", errors.New("unexpected prompt " + prompt)
	}
	return s.ask(s, prompt)
}

func (s *scriptIO) Select(_ context.Context, _ string, options []string) (int, error) {
	return s.choose(s, options), nil
}

func (s *scriptIO) Pause(context.Context, string) error {
	s.pauses++
	return nil
}

func (s *scriptIO) ShowGuesses(g []Guess) { s.guesses = slices.Clone(g) }

func (s *scriptIO) said(text string) bool {
	return slices.ContainsFunc(s.lines, func(l string) bool { return strings.Contains(l, text) })
}

func (s *scriptIO) last() string { return s.lines[len(s.lines)-1] }

// answers returns an ask func that replays fixed inputs.
func answers(in ...string) func(*scriptIO, string) (string, error) {
	return func(*scriptIO, string) (string, error) {
		if len(in) == 0 {
			return "", errors.New("script exhausted")
		}
		next := in[0]
		in = in[1:]
		return next, nil
	}
}

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestRegistry(t *testing.T) {
	sio := &scriptIO{ask: answers("CRANE")}
	game := NewWordPuzzle(sio, seeded(), []string{"CRANE"})
	if _, err := NewRegistry(nil, game, game); err == nil {
		t.Error("Expected duplicate id error")
	}

	reg, err := NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)), game)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if !reg.Has(WordPuzzleID) || reg.Has(MathQuizID) {
		t.Errorf("Unexpected registry ids %v", reg.IDs())
	}

	p := models.NewPlayer("Sam")
	if err := reg.Play(context.Background(), MathQuizID, p); err == nil {
		t.Error("Expected unknown id error")
	}
	if err := reg.Play(context.Background(), WordPuzzleID, p); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !p.HasCompletedMinigame(WordPuzzleID) {
		t.Error("Expected the game to be completed")
	}
	want := []Result{{ID: WordPuzzleID, Subject: models.English, Points: 22, Correct: 1, Total: 1, Won: true}}
	if diff := cmp.Diff(want, reg.Results()); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestStandardSet(t *testing.T) {
	games := Standard(Deps{IO: &scriptIO{}, Rand: seeded()})
	reg, err := NewRegistry(nil, games...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	want := []string{WordPuzzleID, SentenceFixID, TypingTestID, MathQuizID, ScienceQuizID}
	if diff := cmp.Diff(want, reg.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestAward(t *testing.T) {
	tests := []struct {
		name           string
		tiers          []tier
		correct, total int
		want           int
	}{
		{"grammar perfect", grammarTiers, 3, 3, 20},
		{"grammar two thirds", grammarTiers, 2, 3, 15},
		{"grammar one third", grammarTiers, 1, 3, 10},
		{"grammar none", grammarTiers, 0, 3, 5},
		{"math perfect", mathTiers, 5, 5, 20},
		{"math four", mathTiers, 4, 5, 15},
		{"math three", mathTiers, 3, 5, 10},
		{"math two", mathTiers, 2, 5, 5},
		{"math one", mathTiers, 1, 5, 3},
		{"science none", scienceTiers, 0, 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := award(percent(tt.correct, tt.total), tt.tiers).points; got != tt.want {
				t.Errorf("Expected %d points, got %d", tt.want, got)
			}
		})
	}
}

func TestTypingScore(t *testing.T) {
	tests := []struct {
		accuracy float64
		wpm      int
		want     int
	}{
		{100, 60, 20},
		{95, 40, 20},
		{99, 39, 15},
		{90, 30, 15},
		{89.9, 90, 10},
		{80, 20, 10},
		{85, 10, 5},
		{70, 0, 5},
		{69.9, 100, 3},
	}
	for _, tt := range tests {
		if got := typingScore(tt.accuracy, tt.wpm).points; got != tt.want {
			t.Errorf("typingScore(%v, %d) = %d, want %d", tt.accuracy, tt.wpm, got, tt.want)
		}
	}
}

func TestWordPuzzlePoints(t *testing.T) {
	want := []int{22, 19, 16, 13, 10, 10}
	for i, w := range want {
		if got := wordPuzzlePoints(i + 1); got != w {
			t.Errorf("attempt %d: got %d, want %d", i+1, got, w)
		}
	}
}

func TestWPMAndAccuracy(t *testing.T) {
	if got := WPM("one two three four five six seven eight nine", 15*time.Second); got != 36 {
		t.Errorf("Expected 36 WPM, got %d", got)
	}
	if got := WPM("words", 0); got != 0 {
		t.Errorf("Expected 0 WPM for no elapsed time, got %d", got)
	}
	tests := []struct {
		original, typed string
		want            float64
	}{
		{"abc", "abc", 100},
		{"abc", "abd", 66.7},
		{"abc", "abcdef", 100},
		{"abcd", "ab", 50},
		{"abc", "", 0},
		{"", "abc", 0},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.original, tt.typed); got != tt.want {
			t.Errorf("Accuracy(%q, %q) = %v, want %v", tt.original, tt.typed, got, tt.want)
		}
	}
}

func TestWordPuzzleWin(t *testing.T) {
	sio := &scriptIO{ask: answers("cr", "CRAN3", "BRANE", " crane ")}
	p := models.NewPlayer("Sam")
	res, err := NewWordPuzzle(sio, seeded(), []string{"CRANE"}).Play(context.Background(), p)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.Won || res.Points != 22 || p.Grade(models.English) != 97 {
		t.Errorf("Unexpected result %+v, english %d", res, p.Grade(models.English))
	}
	for _, msg := range []string{"exactly 5 letters", "only letters", "Did you mean CRANE?"} {
		if !sio.said(msg) {
			t.Errorf("Expected output to mention %q", msg)
		}
	}
	if len(sio.guesses) != 1 || sio.guesses[0].Word != "CRANE" {
		t.Errorf("Unexpected guess history %+v", sio.guesses)
	}
}

func TestWordPuzzleLoss(t *testing.T) {
	words := []string{"CRANE", "SLATE"}
	target := wordlist.PickRandom(seeded(), words)
	other := words[0]
	if other == target {
		other = words[1]
	}

	sio := &scriptIO{ask: answers(other, other, other, other, other, other)}
	p := models.NewPlayer("Sam")
	res, err := NewWordPuzzle(sio, seeded(), words).Play(context.Background(), p)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Won || res.Points != 5 || p.Grade(models.English) != 80 {
		t.Errorf("Unexpected result %+v, english %d", res, p.Grade(models.English))
	}
	if len(sio.guesses) != MaxAttempts {
		t.Errorf("Expected %d guesses, got %d", MaxAttempts, len(sio.guesses))
	}
	if !sio.said("The word was: " + target) {
		t.Error("Expected the target to be revealed")
	}
	if !p.HasCompletedMinigame(WordPuzzleID) {
		t.Error("Expected completion on a loss")
	}
}

// pickAnswerFrom finds the question on screen and picks its answer.
func pickAnswerFrom(table []Question) func(*scriptIO, []string) int {
	return func(s *scriptIO, options []string) int {
		for i := len(s.lines) - 1; i >= 0; i-- {
			for _, q := range table {
				if strings.Contains(s.lines[i], q.Prompt) {
					return slices.Index(options, q.Options[q.Answer]) + 1
				}
			}
		}
		return 1
	}
}

func pickWrongFrom(table []Question) func(*scriptIO, []string) int {
	right := pickAnswerFrom(table)
	return func(s *scriptIO, options []string) int {
		return right(s, options)%len(options) + 1
	}
}

func TestSentenceFix(t *testing.T) {
	tests := []struct {
		name    string
		choose  func(*scriptIO, []string) int
		correct int
		points  int
	}{
		{"all right", pickAnswerFrom(GrammarQuestions()), 3, 20},
		{"all wrong", pickWrongFrom(GrammarQuestions()), 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sio := &scriptIO{choose: tt.choose}
			p := models.NewPlayer("Sam")
			game := NewSentenceFix(sio, NewStaticSource(GrammarQuestions(), seeded()), seeded())
			res, err := game.Play(context.Background(), p)
			if err != nil {
				t.Fatalf("Play: %v", err)
			}
			if res.Correct != tt.correct || res.Total != 3 || res.Points != tt.points {
				t.Errorf("Unexpected result %+v", res)
			}
			if p.Grade(models.English) != 75+tt.points {
				t.Errorf("Expected english %d, got %d", 75+tt.points, p.Grade(models.English))
			}
			if sio.pauses != 2 {
				t.Errorf("Expected a pause between questions, got %d", sio.pauses)
			}
			if !sio.said("Error type:") {
				t.Error("Expected the error type to be shown")
			}
		})
	}
}

type failingSource struct{ calls int }

func (f *failingSource) Questions(context.Context, int) ([]Question, error) {
	f.calls++
	return nil, errors.New("quota exceeded")
}

type brokenSource struct{}

func (brokenSource) Questions(_ context.Context, n int) ([]Question, error) {
	return make([]Question, n), nil
}

type repeatingSource struct{}

func (repeatingSource) Questions(_ context.Context, n int) ([]Question, error) {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{Prompt: "Pick one", Options: []string{"Same", "Other", "Same"}, Answer: 2}
	}
	return qs, nil
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{"no prompt", Question{Options: []string{"a", "b"}}, "no prompt"},
		{"one option", Question{Prompt: "p", Options: []string{"a"}}, "has 1 options"},
		{"answer out of range", Question{Prompt: "p", Options: []string{"a", "b"}, Answer: 2}, "out of range"},
		{"repeated option", Question{Prompt: "p", Options: []string{"a", "b", "a"}}, `repeats option "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	for _, q := range append(ScienceQuestions(), GrammarQuestions()...) {
		if err := q.Validate(); err != nil {
			t.Errorf("Built-in question invalid: %v", err)
		}
	}
}

func TestScienceQuizFallsBack(t *testing.T) {
	for _, primary := range []QuestionSource{&failingSource{}, brokenSource{}, repeatingSource{}} {
		src := &FallbackSource{
			Primary:   primary,
			Secondary: NewStaticSource(ScienceQuestions(), seeded()),
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
		sio := &scriptIO{choose: pickAnswerFrom(ScienceQuestions())}
		p := models.NewPlayer("Sam")
		res, err := NewScienceQuiz(sio, src, seeded()).Play(context.Background(), p)
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		if res.Correct != 5 || res.Points != 20 || p.Grade(models.Science) != 95 {
			t.Errorf("Unexpected result %+v", res)
		}
	}
}

func TestStaticSourceSamplesWithoutReplacement(t *testing.T) {
	qs, err := NewStaticSource(ScienceQuestions(), seeded()).Questions(context.Background(), 5)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if seen[q.Prompt] {
			t.Errorf("Duplicate question %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
	if len(qs) != 5 {
		t.Errorf("Expected 5 questions, got %d", len(qs))
	}
	if _, err := NewStaticSource(nil, seeded()).Questions(context.Background(), 1); err == nil {
		t.Error("Expected an error from an empty table")
	}
}

// solve answers the generated math questions by reading them back.
func solve(q string) (int, bool) {
	var a, b, c int
	if _, err := fmt.Sscanf(q, "What is %d + %d?", &a, &b); err == nil {
		return a + b, true
	}
	if _, err := fmt.Sscanf(q, "What is %d - %d?", &a, &b); err == nil {
		return a - b, true
	}
	if _, err := fmt.Sscanf(q, "What is %d × %d?", &a, &b); err == nil {
		return a * b, true
	}
	if _, err := fmt.Sscanf(q, "Solve for x: %dx + %d = %d", &a, &b, &c); err == nil {
		return (c - b) / a, true
	}
	if _, err := fmt.Sscanf(q, "If x = %d, what is %dx + %d?", &c, &a, &b); err == nil {
		return a*c + b, true
	}
	for _, wp := range wordProblems {
		if wp.question == q {
			return wp.answer, true
		}
	}
	return 0, false
}

func TestMathQuiz(t *testing.T) {
	bad := true
	sio := &scriptIO{}
	sio.ask = func(s *scriptIO, _ string) (string, error) {
		if bad {
			bad = false
			return "twelve", nil
		}
		for i := len(s.lines) - 1; i >= 0; i-- {
			if n, ok := solve(s.lines[i]); ok {
				return strconv.Itoa(n), nil
			}
		}
		return "", errors.New("no question shown")
	}
	p := models.NewPlayer("Sam")
	res, err := NewMathQuiz(sio, seeded()).Play(context.Background(), p)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Correct != 5 || res.Points != 20 || p.Grade(models.Math) != 95 {
		t.Errorf("Unexpected result %+v", res)
	}
	if !sio.said("Please enter a valid number!") {
		t.Error("Expected a re-prompt for non-numeric input")
	}
	if sio.pauses != 4 {
		t.Errorf("Expected 4 pauses, got %d", sio.pauses)
	}
}

func TestMathGenerators(t *testing.T) {
	r := seeded()
	for range 200 {
		for _, gen := range []generator{arithmetic, algebra, wordProblem} {
			pr := gen(r)
			got, ok := solve(pr.question)
			if !ok || got != pr.answer {
				t.Fatalf("%q: solved %d, want %d", pr.question, got, pr.answer)
			}
		}
	}
}

func TestTypingTest(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	ticks := []time.Time{start, start.Add(10 * time.Second)}
	now := func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	sio := &scriptIO{ask: func(s *scriptIO, _ string) (string, error) {
		return strconv.Unquote(strings.TrimSpace(s.last()))
	}}
	p := models.NewPlayer("Sam")
	res, err := NewTypingTest(sio, seeded(), now).Play(context.Background(), p)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Points != 20 || p.Grade(models.English) != 95 {
		t.Errorf("Unexpected result %+v", res)
	}
	for _, msg := range []string{"Time: 10.0 seconds", "Accuracy: 100.0%", "Typos: 0"} {
		if !sio.said(msg) {
			t.Errorf("Expected output to mention %q", msg)
		}
	}
	if sio.pauses != 1 {
		t.Errorf("Expected a ready pause, got %d", sio.pauses)
	}
}
