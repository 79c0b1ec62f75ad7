package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pillfall/pillfall/internal/config"
	"github.com/pillfall/pillfall/internal/core"
)

// speedOption pairs a preset with its menu description.
type speedOption struct {
	preset config.SpeedPreset
	label  string
}

var speedOptions = []speedOption{
	{config.SpeedLow, "LOW  - relaxed drop rate"},
	{config.SpeedMed, "MED  - the classic pace"},
	{config.SpeedHi, "HI   - pills barely pause"},
}

// SpeedMenuModel lets users choose the drop-speed preset before a run.
type SpeedMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.SpeedPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewSpeedMenuModel creates a new speed selection model.
func NewSpeedMenuModel(width, height int) SpeedMenuModel {
	cursor := 0
	for i, opt := range speedOptions {
		if opt.preset == config.SpeedMed {
			cursor = i
		}
	}
	return SpeedMenuModel{
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SpeedMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SpeedMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SpeedMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(speedOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = speedOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the speed selection.
func (m SpeedMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P I L L F A L L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select speed:", m.width))
	b.WriteString("\n\n")

	for i, opt := range speedOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or empty if still choosing.
func (m SpeedMenuModel) Selected() config.SpeedPreset {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SpeedMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SpeedMenuModel) WantsBack() bool {
	return m.back
}

// RunSpeedSelector runs the speed selection and returns the chosen preset.
// An empty preset means the user backed out or quit.
func RunSpeedSelector(cfg core.RuntimeConfig) (config.SpeedPreset, error) {
	model := NewSpeedMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(SpeedMenuModel)
	if !ok {
		return "", nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return "", nil
	}

	return m.Selected(), nil
}

// centerText centers a line of text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
