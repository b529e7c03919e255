package minigame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
)

// Question is a multiple-choice question. Answer is a 0-based index into
// Options. Topic is shown above the question when set.
type Question struct {
	Topic       string   `yaml:"topic"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	Answer      int      `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
}

// Validate reports whether q can be asked.
func (q Question) Validate() error {
	switch {
	case q.Prompt == "":
		return errors.New("question has no prompt")
	case len(q.Options) < 2:
		return fmt.Errorf("question %q has %d options", q.Prompt, len(q.Options))
	case q.Answer < 0 || q.Answer >= len(q.Options):
		return fmt.Errorf("question %q answer %d out of range", q.Prompt, q.Answer)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("question %q repeats option %q", q.Prompt, opt)
		}
		seen[opt] = true
	}
	return nil
}

// QuestionSource supplies n questions for one play.
type QuestionSource interface {
	Questions(ctx context.Context, n int) ([]Question, error)
}

// StaticSource samples without replacement from a fixed table.
type StaticSource struct {
	table []Question
	rng   *rand.Rand
}

func NewStaticSource(table []Question, rng *rand.Rand) *StaticSource {
	return &StaticSource{table: table, rng: rng}
}

func (s *StaticSource) Questions(_ context.Context, n int) ([]Question, error) {
	if len(s.table) == 0 {
		return nil, errors.New("minigame: empty question table")
	}
	qs := slices.Clone(s.table)
	s.rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	return qs[:min(n, len(qs))], nil
}

// FallbackSource asks Primary first and falls back to Secondary on any
// error or invalid question.
type FallbackSource struct {
	Primary   QuestionSource
	Secondary QuestionSource
	Logger    *slog.Logger
}

func (f *FallbackSource) Questions(ctx context.Context, n int) ([]Question, error) {
	qs, err := f.Primary.Questions(ctx, n)
	if err == nil {
		err = validateAll(qs, n)
	}
	if err == nil {
		return qs, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if f.Logger != nil {
		f.Logger.Warn("question generation failed, using built-in questions", "err", err)
	}
	return f.Secondary.Questions(ctx, n)
}

func validateAll(qs []Question, n int) error {
	if len(qs) < n {
		return fmt.Errorf("got %d questions, want %d", len(qs), n)
	}
	var errs []error
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ScienceQuestions returns the built-in science trivia table.
func ScienceQuestions() []Question { return slices.Clone(scienceQuestions) }

// GrammarQuestions returns the built-in sentence correction table.
func GrammarQuestions() []Question { return slices.Clone(grammarQuestions) }

var scienceQuestions = []Question{
	{
		Prompt:      "What is the chemical symbol for water?",
		Options:     []string{"H2O", "CO2", "O2", "H2"},
		Answer:      0,
		Explanation: "Water is composed of 2 hydrogen atoms and 1 oxygen atom, hence H2O.",
	},
	{
		Prompt:      "Which organ pumps blood throughout the human body?",
		Options:     []string{"Liver", "Lungs", "Heart", "Kidney"},
		Answer:      2,
		Explanation: "The heart is a muscular organ that pumps blood through the circulatory system.",
	},
	{
		Prompt:      "What is the speed of light in a vacuum?",
		Options:     []string{"300,000 km/s", "150,000 km/s", "500,000 km/s", "100,000 km/s"},
		Answer:      0,
		Explanation: "Light travels at approximately 300,000 kilometers per second in a vacuum.",
	},
	{
		Prompt:      "What gas do plants absorb from the atmosphere?",
		Options:     []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"},
		Answer:      2,
		Explanation: "Plants absorb CO2 during photosynthesis and release oxygen.",
	},
	{
		Prompt:      "How many bones are in the adult human body?",
		Options:     []string{"186", "206", "226", "246"},
		Answer:      1,
		Explanation: "Adults have 206 bones, while babies are born with about 270 that fuse over time.",
	},
	{
		Prompt:      "What is the smallest unit of life?",
		Options:     []string{"Atom", "Molecule", "Cell", "Organ"},
		Answer:      2,
		Explanation: "The cell is the basic structural and functional unit of all living organisms.",
	},
	{
		Prompt:      "Which planet is known as the Red Planet?",
		Options:     []string{"Venus", "Mars", "Jupiter", "Saturn"},
		Answer:      1,
		Explanation: "Mars appears red due to iron oxide (rust) on its surface.",
	},
	{
		Prompt:      "What type of energy does a moving object have?",
		Options:     []string{"Potential", "Kinetic", "Thermal", "Chemical"},
		Answer:      1,
		Explanation: "Kinetic energy is the energy of motion.",
	},
	{
		Prompt:      "What is the process by which plants make food?",
		Options:     []string{"Respiration", "Photosynthesis", "Digestion", "Fermentation"},
		Answer:      1,
		Explanation: "Photosynthesis converts light energy into chemical energy stored in glucose.",
	},
	{
		Prompt:      "Which element has the atomic number 1?",
		Options:     []string{"Helium", "Hydrogen", "Carbon", "Oxygen"},
		Answer:      1,
		Explanation: "Hydrogen is the lightest and most abundant element in the universe.",
	},
	{
		Prompt:      "What is the force that pulls objects toward Earth?",
		Options:     []string{"Magnetism", "Friction", "Gravity", "Tension"},
		Answer:      2,
		Explanation: "Gravity is the force of attraction between objects with mass.",
	},
	{
		Prompt:      "What is the largest organ in the human body?",
		Options:     []string{"Liver", "Brain", "Heart", "Skin"},
		Answer:      3,
		Explanation: "The skin is the largest organ, protecting the body and regulating temperature.",
	},
	{
		Prompt:      "What are the three states of matter?",
		Options:     []string{"Solid, Liquid, Gas", "Hot, Cold, Warm", "Hard, Soft, Medium", "Big, Small, Tiny"},
		Answer:      0,
		Explanation: "Matter commonly exists in solid, liquid, and gas states (plasma is a fourth state).",
	},
	{
		Prompt:      "What is the center of an atom called?",
		Options:     []string{"Electron", "Proton", "Nucleus", "Neutron"},
		Answer:      2,
		Explanation: "The nucleus contains protons and neutrons, while electrons orbit around it.",
	},
	{
		Prompt:      "Which vitamin does sunlight help your body produce?",
		Options:     []string{"Vitamin A", "Vitamin B", "Vitamin C", "Vitamin D"},
		Answer:      3,
		Explanation: "Sunlight helps the skin produce Vitamin D, important for bone health.",
	},
}

var grammarQuestions = []Question{
	{
		Topic:  "Incorrect pronoun usage",
		Prompt: "Me and my friend went to the store yesterday.",
		Options: []string{
			"My friend and I went to the store yesterday.",
			"Me and my friend gone to the store yesterday.",
			"My friend and me went to the store yesterday.",
			"I and my friend went to the store yesterday.",
		},
		Answer:      0,
		Explanation: "Use 'I' instead of 'me' as the subject. 'My friend and I' is correct.",
	},
	{
		Topic:  "Subject-verb agreement",
		Prompt: "The book on the table belong to Sarah.",
		Options: []string{
			"The book on the table belongs to Sarah.",
			"The books on the table belong to Sarah.",
			"The book on the tables belong to Sarah.",
			"The book on the table belonging to Sarah.",
		},
		Answer:      0,
		Explanation: "The subject 'book' is singular, so the verb should be 'belongs', not 'belong'.",
	},
	{
		Topic:  "Homophone confusion",
		Prompt: "Their going to the movies tonight with there friends.",
		Options: []string{
			"They're going to the movies tonight with their friends.",
			"Their going to the movies tonight with their friends.",
			"They're going to the movies tonight with there friends.",
			"There going to the movies tonight with their friends.",
		},
		Answer:      0,
		Explanation: "'They're' (they are) and 'their' (possessive) are the correct forms here.",
	},
	{
		Topic:  "Subject-verb agreement",
		Prompt: "Each of the students have completed their assignment.",
		Options: []string{
			"Each of the students has completed their assignment.",
			"Each of the students have completed his assignment.",
			"All of the students have completed their assignment.",
			"Each of the students have completed his or her assignment.",
		},
		Answer:      0,
		Explanation: "'Each' is singular, so it requires the singular verb 'has', not 'have'.",
	},
	{
		Topic:  "Incorrect pronoun case",
		Prompt: "Between you and I, this test is really difficult.",
		Options: []string{
			"Between you and me, this test is really difficult.",
			"Between you and myself, this test is really difficult.",
			"Between I and you, this test is really difficult.",
			"Between yourself and I, this test is really difficult.",
		},
		Answer:      0,
		Explanation: "After a preposition like 'between', use the object pronoun 'me', not 'I'.",
	},
	{
		Topic:  "Multiple errors",
		Prompt: "The team are playing good today.",
		Options: []string{
			"The team is playing well today.",
			"The team are playing well today.",
			"The team is playing good today.",
			"The teams is playing good today.",
		},
		Answer:      0,
		Explanation: "'Team' is singular (use 'is'), and 'well' is the correct adverb (not 'good').",
	},
}
