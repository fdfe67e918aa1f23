// SPDX-License-Identifier: MIT

// Package tui provides the interactive balancing view: an input line whose
// content is re-balanced on every keystroke, with Enter committing the
// result to a short history.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/equation"
	"github.com/katalvlaran/stoic/internal/styles"
)

// historyLimit caps the number of committed equations kept on screen.
const historyLimit = 8

// Model is the balancing view. It implements tea.Model.
type Model struct {
	input  textinput.Model
	keys   *KeyMap
	styles *styles.Styles
	opts   []balance.Option

	preview string             // live rendering of the input
	result  *equation.Equation // last committed balance
	err     error              // last commit error
	history []string

	width int
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates a focused balancing view. A nil s uses the default styles.
func New(s *styles.Styles, opts ...balance.Option) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "H2 + O2 = H2O"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return &Model{
		input:  ti,
		keys:   DefaultKeyMap(),
		styles: s,
		opts:   opts,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("stoic"))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 6; w >= 20 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Balance):
			m.commit()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// refresh recomputes the live preview from the input.
func (m *Model) refresh() {
	m.preview = balance.Preview(m.input.Value(), m.opts...)
}

// commit balances the input strictly according to the options and records
// either the result or the error.
func (m *Model) commit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	eq, err := balance.BalanceString(text, m.opts...)
	m.result, m.err = eq, err
	if err != nil {
		return
	}
	m.history = append([]string{eq.String()}, m.history...)
	if len(m.history) > historyLimit {
		m.history = m.history[:historyLimit]
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(s.Title.Render("stoic"))
	b.WriteString(s.Muted.Render("  exact chemical equation balancer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.preview != "" {
		b.WriteString(s.Muted.Render("preview  "))
		b.WriteString(m.preview)
		b.WriteString("\n")
	}
	switch {
	case m.err != nil:
		b.WriteString(s.Error.Render("error    " + m.err.Error()))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(s.Success.Render("balanced "))
		b.WriteString(s.Equation(m.result))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Border.Render(strings.Join(m.history, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render(m.helpLine()))

	return lipgloss.NewStyle().MaxWidth(m.maxWidth()).Render(b.String())
}

// helpLine renders "enter balance • ctrl+l clear • esc quit".
func (m *Model) helpLine() string {
	parts := make([]string, 0, 3)
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	return strings.Join(parts, " • ")
}

func (m *Model) maxWidth() int {
	if m.width <= 0 {
		return 0
	}

	return m.width
}

// Value returns the current input.
func (m *Model) Value() string { return m.input.Value() }

// SetValue replaces the input and refreshes the preview.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
	m.refresh()
}

// Preview returns the live rendering of the input ("" when it does not parse).
func (m *Model) Preview() string { return m.preview }

// Result returns the last committed balanced equation.
func (m *Model) Result() *equation.Equation { return m.result }

// Err returns the last commit error.
func (m *Model) Err() error { return m.err }

// History returns committed equations, newest first.
func (m *Model) History() []string { return m.history }
