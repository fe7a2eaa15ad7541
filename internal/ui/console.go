package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Console prints status lines and asks yes/no questions.
type Console struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	assumeYes   bool
}

type Option func(*Console)

// WithInteractive switches Confirm to the terminal prompt.
func WithInteractive(interactive bool) Option {
	return func(c *Console) {
		c.interactive = interactive
	}
}

// WithAssumeYes answers every question with yes without asking.
func WithAssumeYes(yes bool) Option {
	return func(c *Console) {
		c.assumeYes = yes
	}
}

func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{in: in, out: out}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Say(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, statusPrefixStyle.Render("➜")+" "+statusTextStyle.Render(msg))
}

// Confirm asks question and reports the answer. Cancelling the prompt
// counts as no.
func (c *Console) Confirm(question string) (bool, error) {
	if c.assumeYes {
		c.Say("%s yes", question)
		return true, nil
	}
	if c.interactive {
		return c.confirmTUI(question)
	}
	return c.confirmLine(question)
}

func (c *Console) confirmTUI(question string) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(question), tea.WithInput(c.in), tea.WithOutput(c.out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := final.(ConfirmModel)
	if !ok {
		return false, nil
	}
	return m.Confirmed(), nil
}

// confirmLine reads a single answer line; anything but y/yes declines.
func (c *Console) confirmLine(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s %s ", promptStyle.Render(question), helpStyle.Render("[y/N]"))

	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
