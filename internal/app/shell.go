package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/reportcard"
	"github.com/tatianab/school-days/internal/tui"
)

const intro = `Welcome to Jefferson High School, where every choice matters!

In this interactive story, you'll experience a day in the life of a high school
student. You'll face challenging tests, interact with friends, and make decisions
that affect your grades, popularity, and overall experience.

FEATURES:
  - Multiple choice-driven story paths
  - Fun mini-games integrated into the story
  - Time-based progression through the school day
  - Grade tracking and performance metrics

TIP: Be yourself, have fun, and don't stress too much about grades.`

const instructions = `HOW TO PLAY:

1. READ the story text carefully. It sets the scene!

2. CHOOSE your actions from the list of choices.

3. PLAY mini-games when they appear:
   - Word Puzzle: Guess the 5-letter word in six tries
   - Grammar Challenge: Fix grammatical errors
   - Typing Test: Type sentences quickly and accurately
   - Math Quiz: Solve arithmetic, algebra and word problems
   - Science Quiz: Answer science questions

4. WATCH your stats: grades, popularity, energy and stress.

Remember: there's no "wrong" way to play. Have fun and enjoy the story!`

// Play runs the full interactive game on c: title, introduction, character
// creation, the school day itself and the ending.
func (g *Game) Play(ctx context.Context, c *tui.Console) error {
	c.TitleScreen("Navigate school life with choices and challenges!")
	if err := c.Pause(ctx, "Press Enter to start your school day..."); err != nil {
		return err
	}

	c.Banner("Welcome to School Days!")
	c.Text(minigame.ToneInfo, intro)
	if err := c.Pause(ctx, "Press Enter to continue..."); err != nil {
		return err
	}

	c.Banner("Character Creation")
	c.Text(minigame.ToneHighlight, "Before we begin, let's get to know you!")
	name, err := askName(ctx, c)
	if err != nil {
		return err
	}
	c.Text(minigame.ToneSuccess, fmt.Sprintf("Welcome, %s! Let's begin your school day adventure!", name))

	c.Banner("Quick Instructions")
	c.Text(minigame.ToneInfo, instructions)
	if err := c.Pause(ctx, "Press Enter to continue..."); err != nil {
		return err
	}

	s, err := g.NewSession(c, name)
	if err != nil {
		return err
	}
	c.Track(s.Player, s.Clock)
	c.ShowSchedule(s.Clock)
	c.Text(minigame.ToneHighlight, fmt.Sprintf("Get ready, %s! Your adventure begins now!", name))
	if err := c.Pause(ctx, "Press Enter to continue..."); err != nil {
		return err
	}

	if err := s.Play(ctx, c); err != nil {
		return err
	}
	g.logger.Info("school day finished", "gpa", s.Player.GPA(), "choices", len(s.Player.ChoicesMade()))
	return g.ending(c, s)
}

func askName(ctx context.Context, c *tui.Console) (string, error) {
	for {
		name, err := c.Ask(ctx, "What is your name? ")
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		c.Text(minigame.ToneError, "Please enter a valid name.")
	}
}

func (g *Game) ending(c *tui.Console, s *Session) error {
	gpa := s.Player.GPA()
	c.Banner("GAME OVER")
	c.Text(minigame.ToneHighlight, "Thanks for playing School Days!")
	c.Text(minigame.ToneWarn, fmt.Sprintf("Your final GPA: %.2f/4.0", gpa))
	c.Text(minigame.ToneSuccess, Verdict(gpa))
	c.ShowStats(s.Player)

	if g.cfg.ReportCard != "" {
		card := reportcard.FromPlayer(s.Player, s.Registry.Results())
		card.Session = g.session
		card.Verdict = Verdict(gpa)
		if err := reportcard.WriteFile(g.cfg.ReportCard, card); err != nil {
			return err
		}
		c.Text(minigame.ToneInfo, "Report card saved to "+g.cfg.ReportCard)
	}

	c.Text(minigame.ToneInfo, "Every playthrough can be different. Try again with new choices!")
	return nil
}
