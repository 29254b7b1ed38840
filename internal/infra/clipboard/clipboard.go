package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 copies through the terminal's OSC 52 escape sequence, which also works
// over SSH.
type OSC52 struct {
	w    io.Writer
	term string
	tmux bool
}

// NewOSC52 writes sequences to w, adapting them for tmux and screen as
// detected from the environment.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{
		w:    w,
		term: os.Getenv("TERM"),
		tmux: os.Getenv("TMUX") != "",
	}
}

func (c *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(c.term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Sink receives text destined for a remote clipboard.
type Sink interface {
	SetClipboard(text string)
}

// Handoff publishes copied text to a Sink so a browser page can place it on
// the user's clipboard.
type Handoff struct {
	sink Sink
}

// NewHandoff wraps a sink such as the view state store.
func NewHandoff(sink Sink) *Handoff {
	return &Handoff{sink: sink}
}

func (h *Handoff) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.sink.SetClipboard(text)
	return nil
}
