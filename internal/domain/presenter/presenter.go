package presenter

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
	"github.com/yanqian/summarizer-console/pkg/util"
)

// Toast messages raised by the copy action.
const (
	ToastCopied     = "Copied"
	ToastCopyFailed = "Failed to copy"
)

// Display is the rendering surface. Text passed to ShowSummary and ShowError
// is plain text and must be rendered verbatim.
type Display interface {
	ShowSummary(text string)
	ShowStats(originalWords, summaryWords, ratio string)
	HideStats()
	ShowError(message string)
	RevealResult()
	SetBusy(busy bool)
	ShowToast(message string)
	HideToast()
	SetAdvisory(visible bool)
}

// Clipboard copies text for the user.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Config configures presentation behaviour.
type Config struct {
	ToastDuration time.Duration
	SlowModels    []string
}

// Presenter renders controller outcomes and handles the copy and model
// selection actions.
type Presenter struct {
	display   Display
	clipboard Clipboard
	clock     util.Clock
	logger    *slog.Logger
	toastTTL  time.Duration
	slow      map[string]struct{}

	mu         sync.Mutex
	text       string
	isError    bool
	toastTimer util.Timer
	toastSeq   uint64
}

// NewPresenter is a wire provider for the result presenter.
func NewPresenter(cfg Config, display Display, clipboard Clipboard, clock util.Clock, logger *slog.Logger) *Presenter {
	slow := make(map[string]struct{}, len(cfg.SlowModels))
	for _, model := range cfg.SlowModels {
		slow[model] = struct{}{}
	}
	ttl := cfg.ToastDuration
	if ttl <= 0 {
		ttl = 2 * time.Second
	}
	return &Presenter{
		display:   display,
		clipboard: clipboard,
		clock:     clock,
		logger:    logger.With("component", "presenter"),
		toastTTL:  ttl,
		slow:      slow,
	}
}

// Present renders a controller outcome. Loading is conveyed through SetBusy only.
func (p *Presenter) Present(outcome summarizer.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch outcome.Phase {
	case summarizer.PhaseSuccess:
		resp := outcome.Response
		p.text, p.isError = resp.Summary, false
		p.display.ShowSummary(resp.Summary)
		p.display.ShowStats(
			strconv.Itoa(resp.OriginalWordCount),
			strconv.Itoa(resp.SummaryWordCount),
			FormatRatio(resp.CompressionRatio),
		)
		p.display.RevealResult()
	case summarizer.PhaseFailure:
		p.text, p.isError = outcome.Message, true
		p.display.HideStats()
		p.display.ShowError(outcome.Message)
	}
}

// SetBusy toggles the submit control's busy affordance.
func (p *Presenter) SetBusy(busy bool) {
	p.display.SetBusy(busy)
}

// Copy puts the displayed summary on the clipboard. It does nothing when no
// text is displayed or the displayed text is an error message.
func (p *Presenter) Copy(ctx context.Context) {
	p.mu.Lock()
	text, isError := p.text, p.isError
	p.mu.Unlock()

	if text == "" || isError {
		return
	}
	if err := p.clipboard.WriteText(ctx, text); err != nil {
		p.logger.Warn("copy to clipboard failed", "error", err)
		p.notify(ToastCopyFailed)
		return
	}
	p.notify(ToastCopied)
}

// SelectModel recomputes the slow model advisory and reports whether it is shown.
func (p *Presenter) SelectModel(model string) bool {
	visible := p.IsSlow(model)
	p.display.SetAdvisory(visible)
	return visible
}

// IsSlow reports whether model belongs to the slow set.
func (p *Presenter) IsSlow(model string) bool {
	_, ok := p.slow[model]
	return ok
}

// notify shows a toast and (re)starts its dismiss timer.
func (p *Presenter) notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.toastTimer != nil {
		p.toastTimer.Stop()
	}
	p.toastSeq++
	seq := p.toastSeq
	p.display.ShowToast(message)
	p.toastTimer = p.clock.AfterFunc(p.toastTTL, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.toastSeq != seq {
			return
		}
		p.toastTimer = nil
		p.display.HideToast()
	})
}

// FormatRatio renders a compression ratio in its shortest form followed by "x".
func FormatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', -1, 64) + "x"
}
