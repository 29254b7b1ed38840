package tui

import (
	"errors"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case viewChangedMsg:
		m.refresh()
		return m, m.listen()
	case tickMsg:
		if m.snap.Busy {
			m.dots = (m.dots + 1) % 4
		}
		return m, tickCmd()
	case healthMsg:
		m.applyHealth(msg)
		return m, healthDue()
	case healthDueMsg:
		return m, m.probeHealth()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter:
		if msg.Alt {
			m.input = append(m.input, '\n')
			return nil
		}
		m.submit()
		return nil
	case tea.KeyTab:
		m.model = m.catalog.Next(m.model)
		m.actions.SelectModel(m.model)
		return nil
	case tea.KeyCtrlL:
		m.length = summarizer.NextLength(m.length)
		return nil
	case tea.KeyCtrlY:
		return m.copy()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return nil
	case tea.KeySpace:
		m.input = append(m.input, ' ')
		return nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == '\r' {
				r = '\n'
			}
			if r == utf8.RuneError {
				continue
			}
			m.input = append(m.input, r)
		}
		return nil
	}
	return nil
}

func (m *Model) submit() {
	out, err := m.submitter.Start(m.ctx, string(m.input), m.length, m.model)
	switch {
	case errors.Is(err, summarizer.ErrSubmissionInFlight):
		m.status = "A summary is already being generated"
	case err != nil:
		m.logger.Error("submit failed", "error", err)
		m.status = "Error: " + err.Error()
	case out.Phase == summarizer.PhaseLoading:
		m.status = "Summarizing"
	}
	m.refresh()
}

func (m *Model) copy() tea.Cmd {
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		actions.Copy(ctx)
		return nil
	}
}

func (m *Model) refresh() {
	m.snap = m.view.Snapshot()
	if !m.snap.Busy && m.status == "Summarizing" {
		m.status = "Ready"
	}
}

func (m *Model) applyHealth(msg healthMsg) {
	switch {
	case msg.err != nil:
		m.health = "unreachable"
	case msg.status == "":
		m.health = "ok"
	default:
		m.health = msg.status
	}
}
