package minigame

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/tatianab/school-days/internal/models"
)

// problem is a generated math question with an integer answer.
type problem struct {
	question string
	answer   int
}

type generator func(r *rand.Rand) problem

// between returns a uniform int in [lo, hi].
func between(r *rand.Rand, lo, hi int) int { return lo + r.IntN(hi-lo+1) }

func arithmetic(r *rand.Rand) problem {
	switch r.IntN(3) {
	case 0:
		a, b := between(r, 10, 99), between(r, 10, 99)
		return problem{fmt.Sprintf("What is %d + %d?", a, b), a + b}
	case 1:
		a := between(r, 50, 99)
		b := between(r, 10, a-1)
		return problem{fmt.Sprintf("What is %d - %d?", a, b), a - b}
	default:
		a, b := between(r, 5, 15), between(r, 5, 15)
		return problem{fmt.Sprintf("What is %d × %d?", a, b), a * b}
	}
}

func algebra(r *rand.Rand) problem {
	if r.IntN(2) == 0 {
		a, b, x := between(r, 2, 10), between(r, 1, 20), between(r, 1, 10)
		return problem{fmt.Sprintf("Solve for x: %dx + %d = %d", a, b, a*x+b), x}
	}
	x, a, b := between(r, 1, 10), between(r, 2, 5), between(r, 1, 10)
	return problem{fmt.Sprintf("If x = %d, what is %dx + %d?", x, a, b), a*x + b}
}

var wordProblems = []problem{
	{"Sarah has 15 apples. She gives 3 apples to each of her 4 friends. How many apples does she have left?", 3},
	{"A book costs $12. If you buy 3 books and have $50, how much money will you have left?", 14},
	{"There are 24 students in a class. If they form groups of 4, how many groups are there?", 6},
	{"A train travels 60 miles per hour. How many miles does it travel in 3 hours?", 180},
	{"Tom scored 85, 90, and 88 on three tests. What is his average score?", 87},
}

// WordProblems returns the fixed word problems keyed by question.
func WordProblems() map[string]int {
	out := make(map[string]int, len(wordProblems))
	for _, p := range wordProblems {
		out[p.question] = p.answer
	}
	return out
}

func wordProblem(r *rand.Rand) problem {
	return wordProblems[r.IntN(len(wordProblems))]
}

// MathQuiz asks two arithmetic, two algebra and one word problem in a
// random order.
type MathQuiz struct {
	io  IO
	rng *rand.Rand
}

func NewMathQuiz(io IO, rng *rand.Rand) *MathQuiz {
	return &MathQuiz{io: io, rng: rng}
}

func (m *MathQuiz) ID() string              { return MathQuizID }
func (m *MathQuiz) Subject() models.Subject { return models.Math }

func (m *MathQuiz) Play(ctx context.Context, p *models.Player) (Result, error) {
	m.io.Print(ToneTitle, "Math Class: Quick Quiz")
	m.io.Print(ToneInfo, "Solve these math problems as quickly as you can!")
	m.io.Print(TonePlain, "Show your work mentally and enter your answer.")

	gens := []generator{arithmetic, arithmetic, algebra, algebra, wordProblem}
	m.rng.Shuffle(len(gens), func(i, j int) { gens[i], gens[j] = gens[j], gens[i] })

	correct := 0
	for i, gen := range gens {
		pr := gen(m.rng)
		m.io.Print(ToneHighlight, fmt.Sprintf("Question %d of %d", i+1, len(gens)))
		m.io.Print(TonePlain, pr.question)

		answer, err := m.askNumber(ctx)
		if err != nil {
			return Result{}, err
		}
		if answer == pr.answer {
			correct++
			m.io.Print(ToneSuccess, "Correct!")
		} else {
			m.io.Print(ToneError, fmt.Sprintf("Incorrect! The correct answer is %d.", pr.answer))
		}
		if i < len(gens)-1 {
			if err := m.io.Pause(ctx, "Press Enter for the next question..."); err != nil {
				return Result{}, err
			}
		}
	}

	pct := printResults(m.io, correct, len(gens))
	t := award(pct, mathTiers)
	m.io.Print(toneFor(t), t.message)
	m.io.Print(ToneSuccess, fmt.Sprintf("Math grade +%d!", t.points))

	return finish(p, Result{
		ID:      MathQuizID,
		Subject: models.Math,
		Points:  t.points,
		Correct: correct,
		Total:   len(gens),
		Won:     t.good,
	}), nil
}

func (m *MathQuiz) askNumber(ctx context.Context) (int, error) {
	for {
		in, err := m.io.Ask(ctx, "Your answer: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(in))
		if err == nil {
			return n, nil
		}
		m.io.Print(ToneError, "Please enter a valid number!")
	}
}
