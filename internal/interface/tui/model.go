package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
	"github.com/yanqian/summarizer-console/internal/infra/summaryapi"
	"github.com/yanqian/summarizer-console/internal/infra/viewstate"
)

// Submitter starts summarization requests.
type Submitter interface {
	Start(ctx context.Context, text string, length summarizer.Length, model string) (summarizer.Outcome, error)
}

// Actions are the presenter actions bound to keys.
type Actions interface {
	Copy(ctx context.Context)
	SelectModel(model string) bool
}

// ViewSource is the display state the terminal renders.
type ViewSource interface {
	Snapshot() viewstate.Snapshot
	Subscribe() (<-chan struct{}, func())
}

// HealthProber checks the summarization backend.
type HealthProber interface {
	Health(ctx context.Context) (summaryapi.Health, error)
}

const healthInterval = 15 * time.Second

// Model is the bubbletea model of the terminal console.
type Model struct {
	ctx       context.Context
	submitter Submitter
	actions   Actions
	view      ViewSource
	backend   HealthProber
	catalog   summarizer.Catalog
	logger    *slog.Logger

	changes     <-chan struct{}
	unsubscribe func()

	input  []rune
	model  string
	length summarizer.Length
	snap   viewstate.Snapshot
	status string
	health string
	dots   int
	width  int
	height int
}

// NewModel builds the terminal model. The subscription to the view is taken
// immediately so no change between construction and Init is lost.
func NewModel(ctx context.Context, submitter Submitter, actions Actions, view ViewSource, backend HealthProber, catalog summarizer.Catalog, logger *slog.Logger) *Model {
	changes, unsubscribe := view.Subscribe()
	m := &Model{
		ctx:         ctx,
		submitter:   submitter,
		actions:     actions,
		view:        view,
		backend:     backend,
		catalog:     catalog,
		logger:      logger.With("component", "tui"),
		changes:     changes,
		unsubscribe: unsubscribe,
		model:       catalog.DefaultModel,
		length:      catalog.DefaultLength,
		snap:        view.Snapshot(),
		status:      "Ready",
		health:      "checking",
		width:       80,
	}
	if m.length == "" {
		m.length = summarizer.LengthMedium
	}
	actions.SelectModel(m.model)
	return m
}

// Close releases the view subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Input returns the current input buffer.
func (m *Model) Input() string {
	return string(m.input)
}

type viewChangedMsg struct{}

type tickMsg time.Time

type healthMsg struct {
	status string
	err    error
}

type healthDueMsg struct{}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listen(), tickCmd(), m.probeHealth())
}

func (m *Model) listen() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return viewChangedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) probeHealth() tea.Cmd {
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		health, err := backend.Health(ctx)
		return healthMsg{status: health.Status, err: err}
	}
}

func healthDue() tea.Cmd {
	return tea.Tick(healthInterval, func(time.Time) tea.Msg {
		return healthDueMsg{}
	})
}
