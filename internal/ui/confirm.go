package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Cancel}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y/enter", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// ConfirmModel is a single yes/no question.
type ConfirmModel struct {
	question  string
	keys      confirmKeyMap
	help      help.Model
	answered  bool
	confirmed bool
}

func NewConfirmModel(question string) ConfirmModel {
	return ConfirmModel{
		question: question,
		keys:     confirmKeys,
		help:     help.New(),
	}
}

func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.answered, m.confirmed = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Cancel):
			m.answered, m.confirmed = true, false
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	prompt := promptStyle.Render(m.question)

	if m.answered {
		answer := "no"
		if m.confirmed {
			answer = "yes"
		}
		return prompt + " " + answerStyle.Render(answer) + "\n"
	}

	return prompt + "\n" + helpStyle.Render(m.help.View(m.keys)) + "\n"
}
