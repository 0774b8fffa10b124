package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/entrify/internal/config"
)

type state int

const (
	stateMenu state = iota
	stateForm
	stateConfirm
	stateSaved
	stateError
)

// Model is the bubbletea model of the configuration editor. The menu lists
// Categories; each opens one form editing the shared ConfigValues.
type Model struct {
	state      state
	values     *ConfigValues
	cursor     int
	form       *huh.Form
	err        error
	dirty      bool
	saveFunc   func(*config.Config) error
	accessible bool
}

type Options struct {
	// Config is the starting configuration, config.Default() when nil
	Config *config.Config
	// SaveFunc persists the edited configuration
	SaveFunc   func(*config.Config) error
	Accessible bool
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return Model{
		values:     FromConfig(cfg),
		saveFunc:   opts.SaveFunc,
		accessible: opts.Accessible,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateForm {
		return m.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(key.String())
	case stateConfirm:
		return m.confirmKey(key.String())
	}
	// saved or error: any key exits
	return m, tea.Quit
}

func (m Model) menuKey(key string) (tea.Model, tea.Cmd) {
	n := len(Categories)

	// 1..n open a category directly
	if i, err := strconv.Atoi(key); err == nil && i >= 1 && i <= n {
		m.cursor = i - 1
		return m.openForm()
	}

	switch key {
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor + n - 1) % n
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % n
	case "enter":
		return m.openForm()
	case "s":
		return m.save()
	case "q", "esc", "ctrl+c":
		if m.dirty {
			m.state = stateConfirm
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	form := GetFormForCategory(Categories[m.cursor].ID, m.values)
	if m.accessible {
		form = form.WithAccessible(true)
	}
	m.form = form
	m.state = stateForm
	return m, form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.state = stateMenu
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.dirty = true
		m.state = stateMenu
		return m, nil
	case huh.StateAborted:
		m.state = stateMenu
		return m, nil
	}
	return m, cmd
}

func (m Model) confirmKey(key string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(key) {
	case "y":
		return m.save()
	case "n", "esc":
		return m, tea.Quit
	case "c":
		m.state = stateMenu
	}
	return m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err == nil && m.saveFunc != nil {
		err = m.saveFunc(cfg)
	}
	if err != nil {
		m.state = stateError
		m.err = err
		return m, nil
	}

	m.state = stateSaved
	m.dirty = false
	return m, nil
}

func (m Model) View() string {
	title := "Entrify Configuration"
	if m.dirty {
		title += " (modified)"
	}

	var body string
	switch m.state {
	case stateMenu:
		body = m.renderMenu()
	case stateForm:
		body = m.form.View()
	case stateConfirm:
		body = confirmStyle.Render("You have unsaved changes.\n\nSave before quitting?\n\n[y] Yes  [n] No  [c] Cancel")
	case stateSaved:
		body = SuccessStyle.Render("Configuration saved successfully!") + "\n\nPress any key to exit."
	case stateError:
		body = ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress any key to exit."
	}

	return TitleStyle.Render(title) + "\n\n" + body
}

func (m Model) renderMenu() string {
	var s strings.Builder

	for i, cat := range Categories {
		line := fmt.Sprintf("  %d %s", i+1, cat.Name)
		if i != m.cursor {
			s.WriteString(UnselectedStyle.Render(line))
			s.WriteString("\n")
			continue
		}
		s.WriteString(SelectedStyle.Render(">" + line[1:]))
		s.WriteString(DescriptionStyle.Render("  " + cat.Description))
		s.WriteString("\n")
	}

	s.WriteString(HelpStyle.Render(fmt.Sprintf("↑/↓ navigate • 1-%d or enter edit • s save • q quit", len(Categories))))
	return s.String()
}

// Run starts the editor on the terminal and blocks until it exits
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}
