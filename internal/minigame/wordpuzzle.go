package minigame

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tatianab/school-days/internal/models"
	"github.com/tatianab/school-days/internal/wordlist"
)

// MaxAttempts is how many guesses the word puzzle allows.
const MaxAttempts = 6

// WordPuzzle is the five-letter guessing game.
type WordPuzzle struct {
	io    IO
	rng   *rand.Rand
	words []string
}

func NewWordPuzzle(io IO, rng *rand.Rand, words []string) *WordPuzzle {
	if len(words) == 0 {
		words = wordlist.Fallback()
	}
	return &WordPuzzle{io: io, rng: rng, words: words}
}

func (w *WordPuzzle) ID() string              { return WordPuzzleID }
func (w *WordPuzzle) Subject() models.Subject { return models.English }

func (w *WordPuzzle) Play(ctx context.Context, p *models.Player) (Result, error) {
	w.io.Print(ToneTitle, "English Class: Word Puzzle Challenge")
	w.io.Print(ToneInfo, fmt.Sprintf("Welcome to Word Master! Guess the %d-letter word in %d tries.", wordlist.WordLength, MaxAttempts))
	w.io.Print(TonePlain, "Green = correct position, Yellow = wrong position, Gray = not in word")

	target := wordlist.PickRandom(w.rng, w.words)
	var guesses []Guess
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		w.io.Print(ToneHighlight, fmt.Sprintf("Attempt %d/%d", attempt, MaxAttempts))

		guess, err := w.askGuess(ctx)
		if err != nil {
			return Result{}, err
		}
		hints, err := wordlist.ComputeHints(target, guess)
		if err != nil {
			return Result{}, err
		}
		guesses = append(guesses, Guess{Word: guess, Hints: hints})
		w.io.ShowGuesses(guesses)

		if wordlist.Solved(hints) {
			points := wordPuzzlePoints(attempt)
			w.io.Print(ToneSuccess, "Congratulations! You guessed the word: "+target)
			w.io.Print(ToneSuccess, fmt.Sprintf("You solved it in %d attempt(s)!", attempt))
			w.io.Print(ToneSuccess, fmt.Sprintf("English grade +%d!", points))
			return finish(p, Result{
				ID:      WordPuzzleID,
				Subject: models.English,
				Points:  points,
				Correct: 1,
				Total:   attempt,
				Won:     true,
			}), nil
		}
	}

	w.io.Print(ToneError, "Out of attempts! The word was: "+target)
	w.io.Print(ToneWarn, "Better luck next time!")
	w.io.Print(ToneInfo, fmt.Sprintf("English grade +%d for trying!", wordPuzzleConsolation))
	return finish(p, Result{
		ID:      WordPuzzleID,
		Subject: models.English,
		Points:  wordPuzzleConsolation,
		Total:   MaxAttempts,
	}), nil
}

// askGuess re-prompts until the input is a known five-letter word.
func (w *WordPuzzle) askGuess(ctx context.Context) (string, error) {
	for {
		in, err := w.io.Ask(ctx, fmt.Sprintf("Enter your %d-letter guess: ", wordlist.WordLength))
		if err != nil {
			return "", err
		}
		guess := wordlist.Normalize(strings.TrimSpace(in))
		switch {
		case len([]rune(guess)) != wordlist.WordLength:
			w.io.Print(ToneError, fmt.Sprintf("Please enter exactly %d letters!", wordlist.WordLength))
		case !wordlist.IsWord(guess):
			w.io.Print(ToneError, "Please use only letters!")
		case !wordlist.Contains(w.words, guess):
			msg := "That's not in our word list! Try another word."
			if s := wordlist.Suggest(w.words, guess); s != "" {
				msg += fmt.Sprintf(" Did you mean %s?", s)
			}
			w.io.Print(ToneError, msg)
		default:
			return guess, nil
		}
	}
}
