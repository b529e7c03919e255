package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/wordlist"
)

// styles are bound to the renderer of the console's output so colour is
// dropped when the output is not a terminal.
type styles struct {
	user   lipgloss.Style
	game   lipgloss.Style
	help   lipgloss.Style
	state  lipgloss.Style
	title  lipgloss.Style
	banner lipgloss.Style
	choice lipgloss.Style
	cursor lipgloss.Style

	tones map[minigame.Tone]lipgloss.Style
	hints map[wordlist.Hint]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	s := styles{
		user: r.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1),

		game: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),

		help: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),

		state: r.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA")),

		title: r.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true),

		banner: r.NewStyle().
			Foreground(lipgloss.Color("#00D7FF")).
			Bold(true),

		choice: r.NewStyle().
			Foreground(lipgloss.Color("#5FAFFF")),

		cursor: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}

	s.tones = map[minigame.Tone]lipgloss.Style{
		minigame.TonePlain:     s.game,
		minigame.ToneTitle:     s.banner,
		minigame.ToneInfo:      r.NewStyle().Foreground(lipgloss.Color("#00AFAF")),
		minigame.ToneSuccess:   r.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
		minigame.ToneError:     r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		minigame.ToneWarn:      r.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
		minigame.ToneHighlight: r.NewStyle().Foreground(lipgloss.Color("#5F87FF")).Bold(true),
	}

	hint := r.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true).Padding(0, 1)
	s.hints = map[wordlist.Hint]lipgloss.Style{
		wordlist.Correct: hint.Background(lipgloss.Color("#5FAF5F")),
		wordlist.Present: hint.Background(lipgloss.Color("#D7AF00")),
		wordlist.Absent:  hint.Background(lipgloss.Color("#808080")).Foreground(lipgloss.Color("#FFFFFF")),
	}
	return s
}

func (s styles) tone(t minigame.Tone) lipgloss.Style {
	if st, ok := s.tones[t]; ok {
		return st
	}
	return s.game
}
