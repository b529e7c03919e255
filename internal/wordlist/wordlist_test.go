package wordlist

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeHints(t *testing.T) {
	C, P, A := Correct, Present, Absent
	tests := []struct {
		target, guess string
		want          []Hint
	}{
		{"HELLO", "HELLO", []Hint{C, C, C, C, C}},
		// O and E both occur in HELLO away from their guessed positions.
		{"HELLO", "HOUSE", []Hint{C, P, A, A, P}},
		// One spare E in LEVEL after the exact match: the leftmost E takes it.
		{"LEVEL", "EERIE", []Hint{P, C, A, A, A}},
		// Single L in the target; the exact match wins over the earlier L.
		{"WORLD", "LLLLL", []Hint{A, A, A, C, A}},
		{"APPLE", "PAPAL", []Hint{P, P, C, A, P}},
		{"CRANE", "TIGHT", []Hint{A, A, A, A, A}},
		{"hello", "HeLlO", []Hint{C, C, C, C, C}},
	}

	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.guess, func(t *testing.T) {
			got, err := ComputeHints(tt.target, tt.guess)
			if err != nil {
				t.Fatalf("ComputeHints: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("hints mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeHintsLengthMismatch(t *testing.T) {
	if _, err := ComputeHints("HELLO", "HELL"); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
	if _, err := ComputeHints("", ""); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Expected ErrEmptyWord, got %v", err)
	}

	mismatched := []struct{ target, guess string }{
		{"GROSS", "GROß"},
		{"GROSß", "GROSS"},
		{"", "HELLO"},
		{"HELLO", ""},
	}
	for _, tt := range mismatched {
		if _, err := ComputeHints(tt.target, tt.guess); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("ComputeHints(%q, %q): expected ErrLengthMismatch, got %v", tt.target, tt.guess, err)
		}
	}
}

func TestComputeHintsOtherLengths(t *testing.T) {
	got, err := ComputeHints("AB", "BA")
	if err != nil {
		t.Fatalf("ComputeHints: %v", err)
	}
	if diff := cmp.Diff([]Hint{Present, Present}, got); diff != "" {
		t.Errorf("hints mismatch (-want +got):\n%s", diff)
	}
}

func TestSolved(t *testing.T) {
	if !Solved([]Hint{Correct, Correct}) {
		t.Error("Expected all-correct hints to be solved")
	}
	if Solved([]Hint{Correct, Present}) || Solved(nil) {
		t.Error("Expected partial or empty hints to be unsolved")
	}
}

func TestFallbackCorpus(t *testing.T) {
	words := Fallback()
	if len(words) < 350 {
		t.Errorf("Expected at least 350 fallback words, got %d", len(words))
	}
	for _, w := range words {
		if !IsWord(w) || w != strings.ToUpper(w) {
			t.Errorf("Invalid fallback word %q", w)
		}
	}
}

func TestRead(t *testing.T) {
	in := "apple\n  Crane \n\nabc\ntoolong\nAPPLE\nb4d1t\n"
	words, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff([]string{"APPLE", "CRANE"}, words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}

	if _, err := Read(strings.NewReader("cat\ndog\n")); !errors.Is(err, ErrNoWords) {
		t.Errorf("Expected ErrNoWords, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	words, fromFile, err := Load(filepath.Join(dir, "missing.txt"))
	if err != nil || fromFile {
		t.Fatalf("Expected fallback for a missing file, got fromFile=%v err=%v", fromFile, err)
	}
	if len(words) != len(Fallback()) {
		t.Errorf("Expected fallback corpus, got %d words", len(words))
	}

	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("chalk\nlunch\n"), 0644); err != nil {
		t.Fatal(err)
	}
	words, fromFile, err = Load(path)
	if err != nil || !fromFile {
		t.Fatalf("Expected file words, got fromFile=%v err=%v", fromFile, err)
	}
	if diff := cmp.Diff([]string{"CHALK", "LUNCH"}, words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestPickRandomAndContains(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	words := []string{"CHALK", "LUNCH", "ESSAY"}
	for range 20 {
		if w := PickRandom(r, words); !Contains(words, w) {
			t.Fatalf("PickRandom returned %q, not in list", w)
		}
	}
	if PickRandom(r, nil) != "" {
		t.Error("Expected empty pick from empty list")
	}
	if !Contains(words, "essay") {
		t.Error("Expected Contains to normalize case")
	}
}

func TestSuggest(t *testing.T) {
	words := []string{"CHALK", "LUNCH", "ESSAY"}
	if got := Suggest(words, "CHALX"); got != "CHALK" {
		t.Errorf("Expected CHALK, got %q", got)
	}
	if got := Suggest(words, "ZZZZZ"); got != "" {
		t.Errorf("Expected no suggestion, got %q", got)
	}
}
