package summarizer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yanqian/summarizer-console/pkg/util"
)

// ErrDeadlineExceeded is the cancellation cause of a fired DeadlineToken.
var ErrDeadlineExceeded = errors.New("summarization deadline exceeded")

// DeadlineToken owns the cancellation of exactly one backend call. It is
// consumed once, either by firing or by Clear, and is never reused.
type DeadlineToken struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	timer  util.Timer
	once   sync.Once
}

// ArmDeadline derives a call context from parent that is cancelled with
// ErrDeadlineExceeded once timeout elapses on clock.
func ArmDeadline(parent context.Context, clock util.Clock, timeout time.Duration) *DeadlineToken {
	ctx, cancel := context.WithCancelCause(parent)
	t := &DeadlineToken{ctx: ctx, cancel: cancel}
	t.timer = clock.AfterFunc(timeout, t.fire)
	return t
}

// Context is the context the guarded call must use.
func (t *DeadlineToken) Context() context.Context {
	return t.ctx
}

func (t *DeadlineToken) fire() {
	t.once.Do(func() {
		t.cancel(ErrDeadlineExceeded)
	})
}

// Clear stops the timer and releases the context. It reports whether this call
// consumed the token; clearing a fired or already cleared token is a no-op.
func (t *DeadlineToken) Clear() bool {
	consumed := false
	t.once.Do(func() {
		consumed = true
		t.timer.Stop()
		t.cancel(context.Canceled)
	})
	return consumed
}
