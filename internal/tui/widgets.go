package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// menuModel is a vertical choice list. Arrow keys or j/k move the cursor,
// a digit picks directly and Enter confirms.
type menuModel struct {
	st      styles
	prompt  string
	options []string
	cursor  int
	chosen  int
	quit    bool
}

func newMenu(st styles, prompt string, options []string) menuModel {
	return menuModel{st: st, prompt: prompt, options: options}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyUp:
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case tea.KeyDown, tea.KeyTab:
		m.cursor = (m.cursor + 1) % len(m.options)
	case tea.KeyEnter:
		m.chosen = m.cursor + 1
		return m, tea.Quit
	case tea.KeyRunes:
		switch s := string(key.Runes); s {
		case "k":
			m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
		case "j":
			m.cursor = (m.cursor + 1) % len(m.options)
		case "q":
			m.quit = true
			return m, tea.Quit
		default:
			if len(s) == 1 && s[0] >= '1' && int(s[0]-'0') <= len(m.options) {
				m.chosen = int(s[0] - '0')
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.chosen != 0 || m.quit {
		return ""
	}
	var b strings.Builder
	if m.prompt != "" {
		b.WriteString(m.st.game.Render(m.prompt) + "\n")
	}
	for i, opt := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.cursor {
			b.WriteString(m.st.cursor.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.st.choice.Render("  "+line) + "\n")
		}
	}
	b.WriteString(m.st.help.Render("↑/↓ to move, enter to choose, esc to quit"))
	return b.String()
}

// promptModel reads one line of free text.
type promptModel struct {
	st     styles
	prompt string
	input  textinput.Model
	value  string
	done   bool
	quit   bool
}

func newPrompt(st styles, prompt, placeholder string) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return promptModel{st: st, prompt: prompt, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.quit {
		return ""
	}
	return m.st.game.Render(m.prompt) + "\n" + m.input.View()
}

// pauseModel waits for Enter.
type pauseModel struct {
	st      styles
	message string
	done    bool
	quit    bool
}

func (m pauseModel) Init() tea.Cmd { return nil }

func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyEnter, tea.KeySpace:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pauseModel) View() string {
	if m.done || m.quit {
		return ""
	}
	return m.st.help.Render(m.message)
}
