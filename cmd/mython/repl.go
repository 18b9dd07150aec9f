package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mython-lang/mython/internal/config"
	"github.com/mython-lang/mython/interp"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	okColor     = lipgloss.Color("#10B981")
	errColor    = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(okColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput textinput.Model
	engine    *interp.Interpreter
	history   []historyEntry
	width     int
	height    int
	quitting  bool
}

var keys = struct {
	CtrlC key.Binding
	CtrlL key.Binding
	Enter key.Binding
}{
	CtrlC: key.NewBinding(key.WithKeys("ctrl+c")),
	CtrlL: key.NewBinding(key.WithKeys("ctrl+l")),
	Enter: key.NewBinding(key.WithKeys("enter")),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "x = 1"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "mython> "

	return replModel{
		textInput: ti,
		engine:    interp.New(config.Default()),
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			return m, nil
		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
			m.textInput.SetValue("")
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate runs a single line of Mython source against the REPL's
// persistent interpreter state: classes and variables defined in one
// line remain visible to the next, since engine.Run shares its global
// closure across calls.
func (m replModel) evaluate(input string) (string, bool) {
	var out strings.Builder
	if err := m.engine.Run(input+"\n", &out); err != nil {
		return err.Error(), true
	}
	if out.Len() == 0 {
		return "", false
	}
	return strings.TrimSuffix(out.String(), "\n"), false
}

func (m replModel) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Mython REPL") + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("-", 40)) + "\n\n")

	for _, entry := range m.history {
		b.WriteString(promptStyle.Render("mython> ") + entry.input + "\n")
		if entry.output == "" {
			continue
		}
		if entry.isErr {
			b.WriteString(errorStyle.Render(entry.output) + "\n")
		} else {
			b.WriteString(outputStyle.Render(entry.output) + "\n")
		}
	}

	b.WriteString("\n" + m.textInput.View() + "\n")
	b.WriteString(mutedStyle.Render("ctrl+c quit, ctrl+l clear"))
	return b.String()
}

func replCommand(args []string) error {
	_ = args
	p := tea.NewProgram(newREPLModel())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return nil
}
