// Package tui is the terminal presentation of the game. A Console shows
// story passages, asks for choices and serves as the mini-game IO, either
// with bubbletea widgets or, in plain mode, with numbered line prompts.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/models"
)

// ErrInterrupted is returned when the player quits from a prompt or input
// ends.
var ErrInterrupted = errors.New("tui: interrupted")

const defaultWidth = 80

// Console reads from in and writes to out.
type Console struct {
	in    io.Reader
	lines *bufio.Reader
	out   io.Writer
	plain bool
	width int
	st    styles

	player *models.Player
	clock  *models.Clock
}

// New returns a console. In plain mode input is read line by line and no
// bubbletea program is started.
func New(in io.Reader, out io.Writer, plain bool) *Console {
	return &Console{
		in:    in,
		lines: bufio.NewReader(in),
		out:   out,
		plain: plain,
		width: defaultWidth,
		st:    newStyles(lipgloss.NewRenderer(out)),
	}
}

// Track sets the player and clock shown in passage headers and the stat
// panel.
func (c *Console) Track(p *models.Player, clock *models.Clock) {
	c.player = p
	c.clock = clock
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// Show implements story.Display.
func (c *Console) Show(_ context.Context, _ string, text string) error {
	c.println("")
	if c.clock != nil {
		c.println(c.st.title.Render(fmt.Sprintf("%s  |  %s", c.clock.CurrentTime(), c.clock.CurrentPeriodName())))
		c.println("")
	}
	if c.plain || c.player == nil {
		c.println(c.st.game.Render(text))
		return nil
	}

	logWidth := int(float64(c.width) * 0.7)
	passage := c.st.game.Width(logWidth).Render(text)
	c.println(lipgloss.JoinHorizontal(lipgloss.Top, passage, c.statPanel(c.width-logWidth-4)))
	return nil
}

// Choose implements story.ChoiceProvider.
func (c *Console) Choose(ctx context.Context, labels []string) (int, error) {
	c.println("")
	n, err := c.choose(ctx, fmt.Sprintf("Enter your choice (1-%d):", len(labels)), labels)
	if err != nil {
		return 0, err
	}
	c.println(c.st.user.Render("> " + labels[n-1]))
	return n, nil
}

// Continue implements story.ChoiceProvider.
func (c *Console) Continue(ctx context.Context, label string) error {
	c.println("")
	c.println(c.st.choice.Render("[" + label + "]"))
	return c.Pause(ctx, "Press Enter to continue...")
}

// Print implements minigame.IO.
func (c *Console) Print(tone minigame.Tone, text string) {
	if tone == minigame.ToneTitle {
		c.println("")
		c.println(c.banner(text))
		return
	}
	c.println(c.st.tone(tone).Render(text))
}

// Ask implements minigame.IO.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if c.plain {
		fmt.Fprint(c.out, prompt)
		return c.readLine(ctx)
	}

	final, err := c.run(ctx, newPrompt(c.st, prompt, ""))
	if err != nil {
		return "", err
	}
	m := final.(promptModel)
	if m.quit {
		return "", ErrInterrupted
	}
	c.println(c.st.help.Render(prompt) + m.value)
	return m.value, nil
}

// Select implements minigame.IO.
func (c *Console) Select(ctx context.Context, prompt string, options []string) (int, error) {
	n, err := c.choose(ctx, prompt, options)
	if err != nil {
		return 0, err
	}
	c.println(c.st.user.Render(fmt.Sprintf("> %d. %s", n, options[n-1])))
	return n, nil
}

// Pause implements minigame.IO.
func (c *Console) Pause(ctx context.Context, message string) error {
	if c.plain {
		fmt.Fprint(c.out, c.st.help.Render(message))
		_, err := c.readLine(ctx)
		return err
	}

	final, err := c.run(ctx, pauseModel{st: c.st, message: message})
	if err != nil {
		return err
	}
	if final.(pauseModel).quit {
		return ErrInterrupted
	}
	return nil
}

// ShowGuesses implements minigame.IO.
func (c *Console) ShowGuesses(guesses []minigame.Guess) {
	c.println("")
	c.println(c.st.game.Render("Your guesses:"))
	for _, g := range guesses {
		c.println("  " + c.FormatGuess(g))
	}
}

// choose returns a 1-based index into options, re-prompting on bad input.
func (c *Console) choose(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("tui: no options to choose from")
	}
	if !c.plain {
		final, err := c.run(ctx, newMenu(c.st, prompt, options))
		if err != nil {
			return 0, err
		}
		m := final.(menuModel)
		if m.quit {
			return 0, ErrInterrupted
		}
		return m.chosen, nil
	}

	for i, opt := range options {
		c.println(c.st.choice.Render(fmt.Sprintf("  %d. %s", i+1, opt)))
	}
	for {
		fmt.Fprintf(c.out, "%s ", strings.TrimSpace(prompt))
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(options) {
			return n, nil
		}
		c.println(c.st.tone(minigame.ToneError).Render(fmt.Sprintf("Please enter a number between 1 and %d.", len(options))))
	}
}

// readLine returns the next input line without its line ending. End of
// input is reported as ErrInterrupted.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.lines.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("tui: read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(c.in), tea.WithOutput(c.out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("tui: %w", err)
	}
	return final, nil
}
