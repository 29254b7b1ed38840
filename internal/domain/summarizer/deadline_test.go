package summarizer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/summarizer-console/pkg/util"
)

func TestDeadlineTokenFires(t *testing.T) {
	clock := util.NewFakeClock(time.Unix(0, 0))
	token := ArmDeadline(context.Background(), clock, 90*time.Second)

	require.NoError(t, token.Context().Err())
	clock.Advance(90 * time.Second)

	require.ErrorIs(t, token.Context().Err(), context.Canceled)
	require.ErrorIs(t, context.Cause(token.Context()), ErrDeadlineExceeded)
	require.False(t, token.Clear(), "clearing a fired token is a no-op")
}

func TestDeadlineTokenClearIsIdempotent(t *testing.T) {
	clock := util.NewFakeClock(time.Unix(0, 0))
	token := ArmDeadline(context.Background(), clock, time.Second)

	require.True(t, token.Clear())
	require.False(t, token.Clear())
	require.Zero(t, clock.Pending())

	clock.Advance(time.Minute)
	require.ErrorIs(t, context.Cause(token.Context()), context.Canceled)
}

func TestDeadlineTokenFollowsParent(t *testing.T) {
	clock := util.NewFakeClock(time.Unix(0, 0))
	parent, cancel := context.WithCancel(context.Background())
	token := ArmDeadline(parent, clock, time.Minute)

	cancel()
	require.Error(t, token.Context().Err())
	require.ErrorIs(t, context.Cause(token.Context()), context.Canceled)
	require.True(t, token.Clear())
}
