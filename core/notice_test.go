package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulation_Run(t *testing.T) {
	sim := Simulation{
		Success: Notice{Title: "Done", Description: "all good"},
		Failure: Notice{Title: "Failed", Description: "try again"},
	}

	t.Run("success", func(t *testing.T) {
		var called bool
		out, err := sim.Run(context.Background(), func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, out.Succeeded())
		assert.Equal(t, "Done", out.Notice.Title)
		assert.Equal(t, VariantDefault, out.Notice.Variant)
	})

	t.Run("fn error", func(t *testing.T) {
		boom := errors.New("boom")
		out, err := sim.Run(context.Background(), func() error { return boom })
		require.Error(t, err)
		assert.Equal(t, OutcomeFailed, out.Status)
		assert.Equal(t, VariantDestructive, out.Notice.Variant)

		var opErr *OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "Failed", opErr.Outcome.Notice.Title)
		assert.True(t, errors.Is(err, boom))
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		slow := sim
		slow.Delay = time.Hour
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var called bool
		out, err := slow.Run(ctx, func() error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, OutcomeFailed, out.Status)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSleep(t *testing.T) {
	start := time.Now()
	require.NoError(t, Sleep(context.Background(), 10*time.Millisecond))
	assert.GreaterOrEqual(t, int64(time.Since(start)), int64(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	assert.Equal(t, context.DeadlineExceeded, Sleep(ctx, time.Hour))
}
