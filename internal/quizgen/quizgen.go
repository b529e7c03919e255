// Package quizgen generates mini-game questions with Gemini.
package quizgen

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/school-days/internal/minigame"
)

//go:embed prompts/questions.txt
var questionsPrompt string

var promptTmpl = template.Must(template.New("questions").Parse(questionsPrompt))

// Topic describes what kind of questions to ask for.
type Topic struct {
	Subject      string
	Instructions string
	WithTopic    bool
}

var (
	Science = Topic{
		Subject:      "science",
		Instructions: "Cover biology, chemistry and physics at a ninth grade level.",
	}
	Grammar = Topic{
		Subject: "English",
		Instructions: "Each prompt is a sentence containing one grammatical error. " +
			"The options are rewrites of the sentence; only one is fully correct.",
		WithTopic: true,
	}
)

type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("quizgen: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetTemperature(0.9)
	return &Generator{
		client: client,
		model:  m,
	}, nil
}

func (g *Generator) Close() {
	g.client.Close()
}

// Source returns a question source for topic backed by g.
func (g *Generator) Source(topic Topic) *Source {
	return &Source{topic: topic, complete: g.complete}
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("unexpected response type from Gemini")
	}
	return sb.String(), nil
}

// Source implements minigame.QuestionSource.
type Source struct {
	topic    Topic
	complete func(ctx context.Context, prompt string) (string, error)
}

func (s *Source) Questions(ctx context.Context, n int) ([]minigame.Question, error) {
	prompt, err := buildPrompt(s.topic, n)
	if err != nil {
		return nil, err
	}
	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("quizgen: generate %s questions: %w", s.topic.Subject, err)
	}
	qs, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if len(qs) < n {
		return nil, fmt.Errorf("quizgen: got %d questions, want %d", len(qs), n)
	}
	return qs[:n], nil
}

func buildPrompt(topic Topic, n int) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Topic
		Count int
	}{topic, n}
	if err := promptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("quizgen: prompt: %w", err)
	}
	return buf.String(), nil
}

// Parse decodes a model reply into questions. Markdown code fences around
// the YAML are ignored. Every question must validate.
func Parse(text string) ([]minigame.Question, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```yaml")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var reply struct {
		Questions []minigame.Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal([]byte(clean), &reply); err != nil {
		return nil, fmt.Errorf("quizgen: parse YAML: %w", err)
	}
	if len(reply.Questions) == 0 {
		return nil, errors.New("quizgen: reply has no questions")
	}

	var errs []error
	for _, q := range reply.Questions {
		if err := q.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("quizgen: %w", err)
	}
	return reply.Questions, nil
}
