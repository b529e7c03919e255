package minigame

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/antzucaro/matchr"

	"github.com/tatianab/school-days/internal/models"
)

var typingSentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Go is a simple and dependable programming language.",
	"Education is the key to unlocking your potential.",
	"Practice makes perfect when learning new skills.",
	"Reading books expands your mind and imagination.",
	"Science helps us understand the world around us.",
	"Mathematics is the language of the universe.",
	"Hard work and dedication lead to success.",
	"Creativity and innovation drive human progress.",
	"Knowledge is power, and learning never stops.",
}

// TypingSentences returns the sentences the typing test draws from.
func TypingSentences() []string { return append([]string(nil), typingSentences...) }

// WPM returns words per minute for typing text in elapsed, rounded to the
// nearest whole word.
func WPM(text string, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(len(strings.Fields(text))) / minutes))
}

// Accuracy is the share of original's characters typed at the same
// position, as a percentage rounded to one decimal.
func Accuracy(original, typed string) float64 {
	want, got := []rune(original), []rune(typed)
	if len(want) == 0 {
		return 0
	}
	hits := 0
	for i := range min(len(want), len(got)) {
		if want[i] == got[i] {
			hits++
		}
	}
	return math.Round(float64(hits)/float64(len(want))*1000) / 10
}

// TypingTest times one sentence and scores speed and accuracy.
type TypingTest struct {
	io  IO
	rng *rand.Rand
	now func() time.Time
}

func NewTypingTest(io IO, rng *rand.Rand, now func() time.Time) *TypingTest {
	return &TypingTest{io: io, rng: rng, now: now}
}

func (t *TypingTest) ID() string              { return TypingTestID }
func (t *TypingTest) Subject() models.Subject { return models.English }

func (t *TypingTest) Play(ctx context.Context, p *models.Player) (Result, error) {
	t.io.Print(ToneTitle, "English Class: Typing Speed Test")
	t.io.Print(ToneInfo, "Type the following sentence as quickly and accurately as you can!")
	if err := t.io.Pause(ctx, "Press Enter when you're ready to start..."); err != nil {
		return Result{}, err
	}

	sentence := typingSentences[t.rng.IntN(len(typingSentences))]
	t.io.Print(ToneHighlight, "Type this sentence:")
	t.io.Print(TonePlain, fmt.Sprintf("  %q", sentence))

	start := t.now()
	typed, err := t.io.Ask(ctx, "Start typing: ")
	if err != nil {
		return Result{}, err
	}
	elapsed := t.now().Sub(start)

	wpm := WPM(sentence, elapsed)
	accuracy := Accuracy(sentence, typed)
	edits := matchr.Levenshtein(sentence, typed)

	t.io.Print(ToneHighlight, "Results:")
	t.io.Print(TonePlain, fmt.Sprintf("   Time: %.1f seconds", elapsed.Seconds()))
	t.io.Print(ToneInfo, fmt.Sprintf("   Speed: %d WPM", wpm))
	t.io.Print(ToneSuccess, fmt.Sprintf("   Accuracy: %.1f%%", accuracy))
	t.io.Print(TonePlain, fmt.Sprintf("   Typos: %d", edits))

	score := typingScore(accuracy, wpm)
	if score.points == 3 {
		t.io.Print(ToneError, score.message)
	} else {
		t.io.Print(toneFor(score), score.message)
	}
	t.io.Print(ToneSuccess, fmt.Sprintf("English grade +%d!", score.points))

	return finish(p, Result{
		ID:      TypingTestID,
		Subject: models.English,
		Points:  score.points,
		Correct: int(math.Round(accuracy)),
		Total:   100,
		Won:     score.good,
	}), nil
}
