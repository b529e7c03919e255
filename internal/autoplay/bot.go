// Package autoplay provides a headless player. A Bot picks story choices at
// random and answers mini-game prompts the way a student of a given skill
// might, so whole school days can be played without a terminal.
package autoplay

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/wordlist"
)

// Bot implements story.Display, story.ChoiceProvider and minigame.IO.
type Bot struct {
	Name string
	// Skill is the chance, from 0 to 1, of answering a question correctly.
	Skill float64
	// Transcript receives everything the bot is shown when set.
	Transcript io.Writer

	Decisions int
	Continues int

	rng        *rand.Rand
	words      []string
	candidates []string
	lines      []string
}

func New(rng *rand.Rand, words []string, skill float64) *Bot {
	if len(words) == 0 {
		words = wordlist.Fallback()
	}
	return &Bot{Name: "Autoplay", Skill: skill, rng: rng, words: words}
}

func (b *Bot) record(s string) {
	b.lines = append(b.lines, s)
	if len(b.lines) > 32 {
		b.lines = b.lines[len(b.lines)-32:]
	}
	if b.Transcript != nil {
		fmt.Fprintln(b.Transcript, s)
	}
}

func (b *Bot) skilled() bool { return b.rng.Float64() < b.Skill }

func (b *Bot) Show(_ context.Context, nodeID, text string) error {
	b.record(fmt.Sprintf("[%s]\n%s", nodeID, text))
	return nil
}

func (b *Bot) Choose(ctx context.Context, labels []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	b.Decisions++
	n := b.rng.IntN(len(labels)) + 1
	b.record("> " + labels[n-1])
	return n, nil
}

func (b *Bot) Continue(ctx context.Context, label string) error {
	b.Continues++
	b.record("[" + label + "]")
	return ctx.Err()
}

func (b *Bot) Print(_ minigame.Tone, text string) {
	if strings.HasPrefix(text, "Attempt 1/") {
		b.candidates = slices.Clone(b.words)
	}
	b.record(text)
}

func (b *Bot) Pause(ctx context.Context, _ string) error { return ctx.Err() }

// ShowGuesses narrows the word candidates to those consistent with every
// hint seen so far.
func (b *Bot) ShowGuesses(guesses []minigame.Guess) {
	last := guesses[len(guesses)-1]
	b.candidates = slices.DeleteFunc(b.candidates, func(w string) bool {
		hints, err := wordlist.ComputeHints(w, last.Word)
		return err != nil || !slices.Equal(hints, last.Hints)
	})
}

func (b *Bot) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var answer string
	switch p := strings.ToLower(prompt); {
	case strings.Contains(p, "name"):
		answer = b.Name
	case strings.Contains(p, "guess"):
		answer = b.guess()
	case strings.Contains(p, "typing"):
		answer = b.typeSentence()
	case strings.Contains(p, "answer"):
		answer = b.mathAnswer()
	}
	b.record(prompt + answer)
	return answer, nil
}

func (b *Bot) Select(ctx context.Context, prompt string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := b.rng.IntN(len(options)) + 1
	if b.skilled() {
		if i := b.knownAnswer(options); i > 0 {
			n = i
		}
	}
	b.record(fmt.Sprintf("%s%d", prompt, n))
	return n, nil
}

func (b *Bot) guess() string {
	pool := b.candidates
	if len(pool) == 0 || !b.skilled() {
		pool = b.words
	}
	return pool[b.rng.IntN(len(pool))]
}

// typeSentence copies the quoted sentence on screen, dropping characters
// at a rate that falls with skill.
func (b *Bot) typeSentence() string {
	var sentence string
	for i := len(b.lines) - 1; i >= 0; i-- {
		if s, err := strconv.Unquote(strings.TrimSpace(b.lines[i])); err == nil {
			sentence = s
			break
		}
	}
	var out strings.Builder
	for _, r := range sentence {
		if b.rng.Float64() < (1-b.Skill)/4 {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func (b *Bot) mathAnswer() string {
	for i := len(b.lines) - 1; i >= 0; i-- {
		if n, ok := Solve(b.lines[i]); ok {
			if !b.skilled() {
				n += 1 + b.rng.IntN(5)
			}
			return strconv.Itoa(n)
		}
	}
	return strconv.Itoa(b.rng.IntN(100))
}

// knownAnswer returns the 1-based index of a built-in question's answer
// when the question on screen is one the bot has studied.
func (b *Bot) knownAnswer(options []string) int {
	tables := slices.Concat(minigame.ScienceQuestions(), minigame.GrammarQuestions())
	for i := len(b.lines) - 1; i >= 0; i-- {
		for _, q := range tables {
			if strings.Contains(b.lines[i], q.Prompt) {
				return slices.Index(options, q.Options[q.Answer]) + 1
			}
		}
	}
	return 0
}
