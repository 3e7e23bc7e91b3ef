package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type assistantDoneMsg struct {
	err error
}

type assistantSpinnerModel struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	err     error
	done    bool
}

func newAssistantSpinnerModel(label string, call tea.Cmd) assistantSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return assistantSpinnerModel{
		spinner: s,
		label:   label,
		call:    call,
	}
}

func (m assistantSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m assistantSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case assistantDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m assistantSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runAssistantSpinner shows label on output while call runs.
func runAssistantSpinner(ctx context.Context, output io.Writer, label string, call func(context.Context) error) error {
	callCmd := func() tea.Msg {
		return assistantDoneMsg{err: call(ctx)}
	}

	p := tea.NewProgram(
		newAssistantSpinnerModel(label, callCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(assistantSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

// withAssistant runs call behind a spinner when the assistant is enabled and
// output is an interactive terminal; otherwise it runs call directly.
func withAssistant(ctx context.Context, app *app, output io.Writer, asJSON bool, label string, call func(context.Context) error) error {
	if asJSON || !app.notes.Enabled() || !isTerminal(output) {
		return call(ctx)
	}

	return runAssistantSpinner(ctx, output, label, call)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
