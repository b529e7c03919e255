package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/models"
	"github.com/tatianab/school-days/internal/wordlist"
)

const titleArt = `
   _____      _                 _   _____
  / ____|    | |               | | |  __ \
 | (___   ___| |__   ___   ___ | | | |  | | __ _ _   _ ___
  \___ \ / __| '_ \ / _ \ / _ \| | | |  | |/ _' | | | / __|
  ____) | (__| | | | (_) | (_) | | | |__| | (_| | |_| \__ \
 |_____/ \___|_| |_|\___/ \___/|_| |_____/ \__,_|\__, |___/
                                                  __/ |
                                                 |___/
`

const rule = "============================================================"

// banner renders a centred heading between two rules.
func (c *Console) banner(text string) string {
	centred := lipgloss.PlaceHorizontal(len(rule), lipgloss.Center, text)
	return rule + "\n" + c.st.banner.Render(centred) + "\n" + rule
}

// Banner prints a centred heading.
func (c *Console) Banner(text string) {
	c.println("")
	c.println(c.banner(text))
	c.println("")
}

// TitleScreen prints the game logo and subtitle.
func (c *Console) TitleScreen(subtitle string) {
	c.println(c.st.banner.Render(titleArt))
	c.println(c.st.title.Render(subtitle))
}

// Text prints a paragraph in the given tone.
func (c *Console) Text(tone minigame.Tone, text string) {
	c.println(c.st.tone(tone).Render(text))
}

// FormatGuess renders one guess with a style per letter. In plain mode
// correct letters are bracketed and present letters parenthesised so the
// hints survive without colour.
func (c *Console) FormatGuess(g minigame.Guess) string {
	letters := []rune(g.Word)
	parts := make([]string, 0, len(letters))
	for i, r := range letters {
		h := wordlist.Absent
		if i < len(g.Hints) {
			h = g.Hints[i]
		}
		if c.plain {
			parts = append(parts, plainHint(r, h))
			continue
		}
		parts = append(parts, c.st.hints[h].Render(string(r)))
	}
	sep := ""
	if c.plain {
		sep = " "
	}
	return strings.Join(parts, sep)
}

func plainHint(r rune, h wordlist.Hint) string {
	switch h {
	case wordlist.Correct:
		return "[" + string(r) + "]"
	case wordlist.Present:
		return "(" + string(r) + ")"
	}
	return " " + string(r) + " "
}

// statPanel is the side panel shown next to story passages.
func (c *Console) statPanel(width int) string {
	p := c.player
	var b strings.Builder
	b.WriteString(c.st.title.Render("STUDENT") + "\n" + p.Name() + "\n\n")

	b.WriteString(c.st.title.Render("STATS") + "\n")
	fmt.Fprintf(&b, "GPA: %.2f\n", p.GPA())
	fmt.Fprintf(&b, "Popularity: %d\n", p.Popularity())
	fmt.Fprintf(&b, "Energy: %d\n", p.Energy())
	fmt.Fprintf(&b, "Stress: %d\n\n", p.Stress())

	b.WriteString(c.st.title.Render("INVENTORY") + "\n")
	inv := p.Inventory()
	if len(inv) == 0 {
		b.WriteString("(empty)")
	}
	for _, item := range inv {
		b.WriteString("- " + item + "\n")
	}
	return c.st.state.Width(width).Render(b.String())
}

// ShowStats prints the full stat sheet.
func (c *Console) ShowStats(p *models.Player) {
	c.Banner("STUDENT STATS")
	c.Text(minigame.TonePlain, fmt.Sprintf("Name: %s", p.Name()))
	c.Text(minigame.ToneHighlight, fmt.Sprintf("GPA: %.2f", p.GPA()))
	for _, s := range models.Subjects {
		c.Text(minigame.TonePlain, fmt.Sprintf("  %-8s %3d", s.Label()+":", p.Grade(s)))
	}
	c.Text(minigame.TonePlain, fmt.Sprintf("Popularity: %d  Energy: %d  Stress: %d", p.Popularity(), p.Energy(), p.Stress()))
	ach := p.Achievements()
	if len(ach) == 0 {
		c.Text(minigame.TonePlain, "Achievements: None")
		return
	}
	c.Text(minigame.ToneSuccess, "Achievements: "+strings.Join(ach, ", "))
}

// ShowSchedule prints the class schedule with the current period marked.
func (c *Console) ShowSchedule(clock *models.Clock) {
	c.Banner("DAILY SCHEDULE")
	for _, p := range models.Schedule() {
		line := fmt.Sprintf("  %-8s  %s", p.Time, p.Name)
		if p.Number == clock.CurrentPeriod() {
			c.println(c.st.cursor.Render("> " + strings.TrimPrefix(line, "  ") + "  (now)"))
			continue
		}
		c.println(c.st.game.Render(line))
	}
}
