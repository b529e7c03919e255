package minigame

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/tatianab/school-days/internal/models"
)

// Quiz is a multiple-choice mini-game over a QuestionSource. The sentence
// correction and science games are both quizzes.
type Quiz struct {
	id      string
	subject models.Subject
	title   string
	intro   []string
	ask     string
	count   int
	tiers   []tier
	source  QuestionSource
	io      IO
	rng     *rand.Rand
}

// NewSentenceFix returns the English grammar quiz: three sentences, each
// with a single correct rewrite.
func NewSentenceFix(io IO, source QuestionSource, rng *rand.Rand) *Quiz {
	return &Quiz{
		id:      SentenceFixID,
		subject: models.English,
		title:   "English Class: Grammar Challenge",
		intro: []string{
			"Fix the grammatical errors in the following sentences!",
			"Choose the correct version of each sentence.",
		},
		ask:    "Select the correct sentence",
		count:  3,
		tiers:  grammarTiers,
		source: source,
		io:     io,
		rng:    rng,
	}
}

// NewScienceQuiz returns the five-question science trivia quiz.
func NewScienceQuiz(io IO, source QuestionSource, rng *rand.Rand) *Quiz {
	return &Quiz{
		id:      ScienceQuizID,
		subject: models.Science,
		title:   "Science Class: Knowledge Challenge",
		intro: []string{
			"Test your science knowledge across biology, chemistry, and physics!",
			"Choose the best answer for each question.",
		},
		ask:    "Your answer",
		count:  5,
		tiers:  scienceTiers,
		source: source,
		io:     io,
		rng:    rng,
	}
}

func (q *Quiz) ID() string              { return q.id }
func (q *Quiz) Subject() models.Subject { return q.subject }

func (q *Quiz) Play(ctx context.Context, p *models.Player) (Result, error) {
	questions, err := q.source.Questions(ctx, q.count)
	if err != nil {
		return Result{}, fmt.Errorf("%s: questions: %w", q.id, err)
	}

	q.io.Print(ToneTitle, q.title)
	for _, line := range q.intro {
		q.io.Print(ToneInfo, line)
	}

	correct := 0
	for i, question := range questions {
		question = q.shuffled(question)
		q.io.Print(ToneHighlight, fmt.Sprintf("Question %d of %d", i+1, len(questions)))
		if question.Topic != "" {
			q.io.Print(ToneWarn, "Error type: "+question.Topic)
			q.io.Print(ToneError, fmt.Sprintf("Original: %q", question.Prompt))
		} else {
			q.io.Print(TonePlain, question.Prompt)
		}

		prompt := fmt.Sprintf("%s (1-%d): ", q.ask, len(question.Options))
		choice, err := q.io.Select(ctx, prompt, question.Options)
		if err != nil {
			return Result{}, err
		}
		if choice-1 == question.Answer {
			correct++
			q.io.Print(ToneSuccess, "Correct!")
		} else {
			q.io.Print(ToneError, "Incorrect!")
			q.io.Print(ToneWarn, "The correct answer is: "+question.Options[question.Answer])
		}
		if question.Explanation != "" {
			q.io.Print(ToneInfo, "Explanation: "+question.Explanation)
		}
		if i < len(questions)-1 {
			if err := q.io.Pause(ctx, "Press Enter to continue..."); err != nil {
				return Result{}, err
			}
		}
	}

	pct := printResults(q.io, correct, len(questions))
	t := award(pct, q.tiers)
	q.io.Print(toneFor(t), t.message)
	q.io.Print(ToneSuccess, fmt.Sprintf("%s grade +%d!", q.subject.Label(), t.points))

	return finish(p, Result{
		ID:      q.id,
		Subject: q.subject,
		Points:  t.points,
		Correct: correct,
		Total:   len(questions),
		Won:     t.good,
	}), nil
}

// shuffled returns question with its options in a random order and the
// answer index moved along with them.
func (q *Quiz) shuffled(question Question) Question {
	if q.rng == nil {
		return question
	}
	answer := question.Options[question.Answer]
	opts := slices.Clone(question.Options)
	q.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	question.Options = opts
	question.Answer = slices.Index(opts, answer)
	return question
}

func toneFor(t tier) Tone {
	if t.good {
		return ToneSuccess
	}
	return ToneInfo
}
