package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/summarizer-console/pkg/util"
)

// Backend performs the outbound summarization call. Failures should be
// reported as *CallError so they can be classified without message sniffing.
type Backend interface {
	Summarize(ctx context.Context, req Request) (Response, error)
}

// Observer receives every state change the controller makes.
type Observer interface {
	SetBusy(busy bool)
	Present(outcome Outcome)
}

// Recorder collects submission metrics.
type Recorder interface {
	Begin()
	Finish(outcome, model string, elapsed time.Duration)
	Rejected(outcome, model string)
}

// Outcome kinds reported to the Recorder.
const (
	kindSuccess     = "success"
	kindValidation  = "validation"
	kindApplication = "application"
	kindTransport   = "transport"
	kindTimeout     = "timeout"
)

// Controller drives one summarization request at a time through
// validation, the backend call, deadline handling and classification.
type Controller struct {
	cfg      Config
	backend  Backend
	observer Observer
	recorder Recorder
	clock    util.Clock
	logger   *slog.Logger
	newID    func() string

	mu       sync.Mutex
	inFlight bool
	state    Outcome
}

// NewController is a wire provider for the request lifecycle controller.
func NewController(cfg Config, backend Backend, observer Observer, recorder Recorder, clock util.Clock, logger *slog.Logger) *Controller {
	if cfg.DefaultLength == "" {
		cfg.DefaultLength = LengthMedium
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Controller{
		cfg:      cfg,
		backend:  backend,
		observer: observer,
		recorder: recorder,
		clock:    clock,
		logger:   logger.With("component", "summarizer.controller"),
		newID:    uuid.NewString,
		state:    idle(),
	}
}

// State returns the current outcome.
func (c *Controller) State() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates the input and, when valid, runs the backend call to
// completion. The returned outcome is the one handed to the observer.
func (c *Controller) Submit(ctx context.Context, text string, length Length, model string) (Outcome, error) {
	req, out, err := c.admit(text, length, model)
	if err != nil || out.Phase == PhaseFailure {
		return out, err
	}
	return c.run(ctx, req, out.SubmissionID), nil
}

// Start is the fire-and-forget form of Submit. It returns the Loading outcome
// (or the local validation failure) and finishes the call on its own goroutine.
// The call outlives ctx cancellation; only the deadline aborts it.
func (c *Controller) Start(ctx context.Context, text string, length Length, model string) (Outcome, error) {
	req, out, err := c.admit(text, length, model)
	if err != nil || out.Phase == PhaseFailure {
		return out, err
	}
	go c.run(context.WithoutCancel(ctx), req, out.SubmissionID)
	return out, nil
}

// admit rejects re-entrant calls, validates the input and, if it is valid,
// enters Loading. Invalid input is presented as a Failure without touching
// the busy affordance.
func (c *Controller) admit(text string, length Length, model string) (Request, Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return Request{}, c.state, ErrSubmissionInFlight
	}

	req := c.normalize(text, length, model)
	id := c.newID()
	if msg := validate(req.Text); msg != "" {
		c.recorder.Rejected(kindValidation, req.Model)
		c.logger.Info("submission rejected locally", "submission_id", id, "reason", msg)
		c.state = failed(id, msg)
		c.observer.Present(c.state)
		return Request{}, c.state, nil
	}

	c.inFlight = true
	c.state = loading(id)
	c.observer.SetBusy(true)
	c.observer.Present(c.state)
	c.logger.Info("submission started", "submission_id", id, "model", req.Model, "length", req.Length, "chars", len(req.Text))
	return req, c.state, nil
}

func (c *Controller) run(ctx context.Context, req Request, id string) Outcome {
	defer c.leaveLoading()

	start := c.clock.Now()
	c.recorder.Begin()

	token := ArmDeadline(ctx, c.clock, c.cfg.Timeout)
	resp, err := c.call(token.Context(), req)
	cleared := token.Clear()

	kind, out := c.classify(id, !cleared, resp, err)
	elapsed := c.clock.Now().Sub(start)
	c.recorder.Finish(kind, req.Model, elapsed)

	if out.Phase == PhaseSuccess {
		c.logger.Info("submission succeeded", "submission_id", id, "latency_ms", elapsed.Milliseconds(), "summary_words", resp.SummaryWordCount)
	} else {
		c.logger.Warn("submission failed", "submission_id", id, "kind", kind, "latency_ms", elapsed.Milliseconds(), "message", out.Message, "error", err)
	}

	c.mu.Lock()
	c.state = out
	c.observer.Present(out)
	c.mu.Unlock()
	return out
}

// leaveLoading re-enables submission. It runs exactly once per admitted
// submission, after the outcome has been presented.
func (c *Controller) leaveLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.observer.SetBusy(false)
}

func (c *Controller) call(ctx context.Context, req Request) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("summarize call panicked: %v", r)
		}
	}()
	return c.backend.Summarize(ctx, req)
}

// classify maps the settled call onto an outcome. A fired deadline wins over
// anything the call returned.
func (c *Controller) classify(id string, deadlineFired bool, resp Response, err error) (string, Outcome) {
	if deadlineFired {
		return kindTimeout, failed(id, MsgTimeout)
	}
	if err != nil {
		kind, msg := classifyError(err)
		return kind, failed(id, msg)
	}
	if resp.Summary == "" {
		return kindApplication, failed(id, MsgEmptySummary)
	}
	return kindSuccess, succeeded(id, resp)
}

func classifyError(err error) (string, string) {
	var callErr *CallError
	if errors.As(err, &callErr) {
		switch callErr.Reason {
		case ReasonHTTPStatus:
			if detail := strings.TrimSpace(callErr.Detail); detail != "" {
				return kindApplication, detail
			}
			return kindApplication, fmt.Sprintf("Server Error: %d", callErr.StatusCode)
		case ReasonUnreachable:
			return kindTransport, MsgUnreachable
		}
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return kindTransport, msg
	}
	return kindTransport, MsgConnectFailure
}

func (c *Controller) normalize(text string, length Length, model string) Request {
	if length == "" {
		length = c.cfg.DefaultLength
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = c.cfg.DefaultModel
	}
	return Request{Text: strings.TrimSpace(text), Length: length, Model: model}
}

// validate returns the failure message for trimmed text, or "" when it is acceptable.
func validate(text string) string {
	if text == "" {
		return MsgEmptyInput
	}
	if len(strings.Fields(text)) < MinWords {
		return MsgTooShort
	}
	return ""
}

type noopRecorder struct{}

func (noopRecorder) Begin()                                {}
func (noopRecorder) Finish(string, string, time.Duration) {}
func (noopRecorder) Rejected(string, string)              {}
