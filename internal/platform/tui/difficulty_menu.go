package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// difficultyOption is one line of the difficulty menu.
type difficultyOption struct {
	level   config.Difficulty
	winning int
	maxBug  float64 // fastest enemy, in tiles per second
}

// DifficultyModel lets users choose the difficulty before a game.
type DifficultyModel struct {
	options   []difficultyOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  bool
	quitting  bool
}

// NewDifficultyModel creates the menu with the cursor on the configured
// difficulty.
func NewDifficultyModel(cfg config.CrossingConfig, width, height int) DifficultyModel {
	m := DifficultyModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range config.Difficulties() {
		c := cfg
		c.Difficulty = d
		m.options = append(m.options, difficultyOption{
			level:   d,
			winning: c.WinningScore(),
			maxBug:  1 + float64(d),
		})
		if d == cfg.Difficulty {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("B U G   C R O S S I N G", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, o := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := centerText(fmt.Sprintf("%s%-6s  bugs up to %.0f tiles/s, win at %d", cursor, o.level, o.maxBug, o.winning), m.width)
		if i == m.cursor {
			line = menuSelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen difficulty and whether a choice was made.
func (m DifficultyModel) Selected() (config.Difficulty, bool) {
	if !m.selected || len(m.options) == 0 {
		return 0, false
	}
	return m.options[m.cursor].level, true
}

// centerText pads text on the left to center it in the given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunDifficultySelector runs the difficulty menu. ok is false when the user
// quit without choosing.
func RunDifficultySelector(cfg config.CrossingConfig, rc core.RuntimeConfig) (d config.Difficulty, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(cfg, rc.ScreenW, rc.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isMenu := finalModel.(DifficultyModel)
	if !isMenu {
		return 0, false, nil
	}
	d, ok = m.Selected()
	return d, ok, nil
}
