package presenter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
	"github.com/yanqian/summarizer-console/pkg/util"
)

func TestPresentSuccess(t *testing.T) {
	display := &recordingDisplay{}
	p := newTestPresenter(display, &stubClipboard{}, util.NewFakeClock(time.Unix(0, 0)))

	p.Present(summarizer.Outcome{
		Phase: summarizer.PhaseSuccess,
		Response: summarizer.Response{
			Summary:           "X",
			OriginalWordCount: 50,
			SummaryWordCount:  10,
			CompressionRatio:  5.0,
		},
	})

	require.Equal(t, []string{"summary:X", "stats:50/10/5x", "reveal"}, display.calls)
}

func TestPresentSummaryIsVerbatim(t *testing.T) {
	display := &recordingDisplay{}
	p := newTestPresenter(display, &stubClipboard{}, util.NewFakeClock(time.Unix(0, 0)))

	markup := "<b>bold</b> & <script>alert(1)</script>"
	p.Present(summarizer.Outcome{Phase: summarizer.PhaseSuccess, Response: summarizer.Response{Summary: markup}})

	require.Equal(t, "summary:"+markup, display.calls[0])
}

func TestPresentFailureHidesStats(t *testing.T) {
	display := &recordingDisplay{}
	p := newTestPresenter(display, &stubClipboard{}, util.NewFakeClock(time.Unix(0, 0)))

	p.Present(summarizer.Outcome{Phase: summarizer.PhaseFailure, Message: "Model overloaded"})

	require.Equal(t, []string{"hide-stats", "error:Model overloaded"}, display.calls)
}

func TestPresentLoadingLeavesDisplayUntouched(t *testing.T) {
	display := &recordingDisplay{}
	p := newTestPresenter(display, &stubClipboard{}, util.NewFakeClock(time.Unix(0, 0)))

	p.Present(summarizer.Outcome{Phase: summarizer.PhaseLoading})
	require.Empty(t, display.calls)

	p.SetBusy(true)
	require.Equal(t, []string{"busy:true"}, display.calls)
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{5.0, "5x"},
		{0.25, "0.25x"},
		{0, "0x"},
		{3.14, "3.14x"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatRatio(tt.ratio))
	}
}

func TestCopySuccessShowsToastThenDismisses(t *testing.T) {
	display := &recordingDisplay{}
	clipboard := &stubClipboard{}
	clock := util.NewFakeClock(time.Unix(0, 0))
	p := newTestPresenter(display, clipboard, clock)
	p.Present(summarizer.Outcome{Phase: summarizer.PhaseSuccess, Response: summarizer.Response{Summary: "copy me"}})
	display.reset()

	p.Copy(context.Background())
	require.Equal(t, []string{"copy me"}, clipboard.written)
	require.Equal(t, []string{"toast:Copied"}, display.calls)

	clock.Advance(1999 * time.Millisecond)
	require.Equal(t, []string{"toast:Copied"}, display.calls)

	clock.Advance(time.Millisecond)
	require.Equal(t, []string{"toast:Copied", "hide-toast"}, display.calls)
}

func TestCopyFailureShowsFailureToast(t *testing.T) {
	display := &recordingDisplay{}
	clock := util.NewFakeClock(time.Unix(0, 0))
	p := newTestPresenter(display, &stubClipboard{err: errors.New("no clipboard")}, clock)
	p.Present(summarizer.Outcome{Phase: summarizer.PhaseSuccess, Response: summarizer.Response{Summary: "copy me"}})
	display.reset()

	p.Copy(context.Background())
	require.Equal(t, []string{"toast:Failed to copy"}, display.calls)

	clock.Advance(2 * time.Second)
	require.Equal(t, []string{"toast:Failed to copy", "hide-toast"}, display.calls)
}

func TestCopyIsNoopForErrorsAndEmptyDisplay(t *testing.T) {
	display := &recordingDisplay{}
	clipboard := &stubClipboard{}
	p := newTestPresenter(display, clipboard, util.NewFakeClock(time.Unix(0, 0)))

	p.Copy(context.Background())
	require.Empty(t, display.calls)

	p.Present(summarizer.Outcome{Phase: summarizer.PhaseFailure, Message: summarizer.MsgTimeout})
	display.reset()

	p.Copy(context.Background())
	require.Empty(t, display.calls)
	require.Empty(t, clipboard.written)
}

func TestNewToastRestartsTimer(t *testing.T) {
	display := &recordingDisplay{}
	clock := util.NewFakeClock(time.Unix(0, 0))
	p := newTestPresenter(display, &stubClipboard{}, clock)
	p.Present(summarizer.Outcome{Phase: summarizer.PhaseSuccess, Response: summarizer.Response{Summary: "text"}})
	display.reset()

	p.Copy(context.Background())
	clock.Advance(1500 * time.Millisecond)
	p.Copy(context.Background())
	clock.Advance(1500 * time.Millisecond)
	require.Equal(t, []string{"toast:Copied", "toast:Copied"}, display.calls)
	require.Equal(t, 1, clock.Pending())

	clock.Advance(500 * time.Millisecond)
	require.Equal(t, []string{"toast:Copied", "toast:Copied", "hide-toast"}, display.calls)
}

func TestSelectModelAdvisory(t *testing.T) {
	display := &recordingDisplay{}
	p := newTestPresenter(display, &stubClipboard{}, util.NewFakeClock(time.Unix(0, 0)))

	require.True(t, p.SelectModel("pegasus"))
	require.False(t, p.SelectModel("distilbart"))
	require.True(t, p.SelectModel("bart-large"))
	require.True(t, p.SelectModel("bart-large"))
	require.False(t, p.SelectModel("t5-small"))
	require.False(t, p.SelectModel("t5-small"))

	require.Equal(t, []string{
		"advisory:true", "advisory:false", "advisory:true",
		"advisory:true", "advisory:false", "advisory:false",
	}, display.calls)
}

func newTestPresenter(display Display, clipboard Clipboard, clock util.Clock) *Presenter {
	return NewPresenter(Config{
		ToastDuration: 2 * time.Second,
		SlowModels:    []string{"pegasus", "bart-large"},
	}, display, clipboard, clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type recordingDisplay struct {
	calls []string
}

func (d *recordingDisplay) reset() { d.calls = nil }

func (d *recordingDisplay) ShowSummary(text string) { d.calls = append(d.calls, "summary:"+text) }

func (d *recordingDisplay) ShowStats(originalWords, summaryWords, ratio string) {
	d.calls = append(d.calls, "stats:"+originalWords+"/"+summaryWords+"/"+ratio)
}

func (d *recordingDisplay) HideStats() { d.calls = append(d.calls, "hide-stats") }

func (d *recordingDisplay) ShowError(message string) { d.calls = append(d.calls, "error:"+message) }

func (d *recordingDisplay) RevealResult() { d.calls = append(d.calls, "reveal") }

func (d *recordingDisplay) SetBusy(busy bool) {
	if busy {
		d.calls = append(d.calls, "busy:true")
		return
	}
	d.calls = append(d.calls, "busy:false")
}

func (d *recordingDisplay) ShowToast(message string) { d.calls = append(d.calls, "toast:"+message) }

func (d *recordingDisplay) HideToast() { d.calls = append(d.calls, "hide-toast") }

func (d *recordingDisplay) SetAdvisory(visible bool) {
	if visible {
		d.calls = append(d.calls, "advisory:true")
		return
	}
	d.calls = append(d.calls, "advisory:false")
}

type stubClipboard struct {
	written []string
	err     error
}

func (c *stubClipboard) WriteText(ctx context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}
