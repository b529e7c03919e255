// Package wordlist holds the five-letter word corpus and the letter feedback
// used by the word puzzle.
package wordlist

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Hint classifies one letter of a guess.
type Hint int

const (
	Absent Hint = iota
	Present
	Correct
)

func (h Hint) String() string {
	switch h {
	case Correct:
		return "correct"
	case Present:
		return "present"
	}
	return "absent"
}

var (
	ErrLengthMismatch = errors.New("wordlist: guess and target lengths differ")
	ErrEmptyWord      = errors.New("wordlist: empty word")
)

// Normalize upper-cases a word for comparison.
func Normalize(word string) string {
	return cases.Upper(language.Und).String(word)
}

// ComputeHints compares guess against target letter by letter. Both words are
// upper-cased first. Exact matches are marked Correct and consume their
// target letter; the remaining letters are then scanned left to right and
// marked Present while an unconsumed copy of the letter is left in the
// target, Absent otherwise.
func ComputeHints(target, guess string) ([]Hint, error) {
	if err := sameLength([]rune(target), []rune(guess)); err != nil {
		return nil, err
	}
	t := []rune(Normalize(target))
	g := []rune(Normalize(guess))
	// Upper-casing can change a word's length, e.g. ß becomes SS.
	if err := sameLength(t, g); err != nil {
		return nil, err
	}

	hints := make([]Hint, len(g))
	matched := make([]bool, len(g))
	pool := make(map[rune]int, len(t))

	for i := range g {
		if g[i] == t[i] {
			hints[i] = Correct
			matched[i] = true
			continue
		}
		pool[t[i]]++
	}

	for i := range g {
		if matched[i] {
			continue
		}
		if pool[g[i]] > 0 {
			hints[i] = Present
			pool[g[i]]--
			continue
		}
		hints[i] = Absent
	}
	return hints, nil
}

// Solved reports whether every hint is Correct.
func Solved(hints []Hint) bool {
	if len(hints) == 0 {
		return false
	}
	for _, h := range hints {
		if h != Correct {
			return false
		}
	}
	return true
}

func sameLength(target, guess []rune) error {
	switch {
	case len(target) == 0 && len(guess) == 0:
		return ErrEmptyWord
	case len(target) != len(guess):
		return fmt.Errorf("%w: target has %d letters, guess has %d", ErrLengthMismatch, len(target), len(guess))
	}
	return nil
}
