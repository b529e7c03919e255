package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tatianab/school-days/internal/minigame"
)

const reply = "```yaml\n" + `questions:
  - prompt: "What is the chemical symbol for gold?"
    options: ["Au", "Ag", "Gd", "Go"]
    answer: 0
    explanation: "Au comes from the Latin aurum."
  - prompt: "What planet is closest to the Sun?"
    options: ["Venus", "Mercury", "Mars", "Earth"]
    answer: 1
    explanation: "Mercury orbits closest to the Sun."
` + "```"

func TestParse(t *testing.T) {
	qs, err := Parse(reply)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []minigame.Question{
		{
			Prompt:      "What is the chemical symbol for gold?",
			Options:     []string{"Au", "Ag", "Gd", "Go"},
			Answer:      0,
			Explanation: "Au comes from the Latin aurum.",
		},
		{
			Prompt:      "What planet is closest to the Sun?",
			Options:     []string{"Venus", "Mercury", "Mars", "Earth"},
			Answer:      1,
			Explanation: "Mercury orbits closest to the Sun.",
		},
	}
	if diff := cmp.Diff(want, qs); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsBadReplies(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not yaml", "questions: [unclosed"},
		{"empty", "questions: []"},
		{"answer out of range", "questions:\n  - prompt: q\n    options: [a, b]\n    answer: 2\n"},
		{"no prompt", "questions:\n  - options: [a, b]\n    answer: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	p, err := buildPrompt(Grammar, 3)
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	for _, want := range []string{"English class", "exactly 3", "topic:"} {
		if !strings.Contains(p, want) {
			t.Errorf("Expected prompt to contain %q:\n%s", want, p)
		}
	}

	p, err = buildPrompt(Science, 5)
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	if strings.Contains(p, "topic:") {
		t.Errorf("Science prompt should not ask for a topic:\n%s", p)
	}
}

func TestSourceQuestions(t *testing.T) {
	var prompts []string
	s := &Source{topic: Science, complete: func(_ context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return reply, nil
	}}

	qs, err := s.Questions(context.Background(), 1)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 1 || len(prompts) != 1 {
		t.Errorf("Expected 1 question from 1 call, got %d from %d", len(qs), len(prompts))
	}

	if _, err := s.Questions(context.Background(), 5); err == nil {
		t.Error("Expected an error when the reply is short")
	}

	s.complete = func(context.Context, string) (string, error) { return "", errors.New("quota exceeded") }
	if _, err := s.Questions(context.Background(), 1); err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Expected the model error, got %v", err)
	}
}
