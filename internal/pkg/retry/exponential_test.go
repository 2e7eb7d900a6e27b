package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestExecuteSucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig())

	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsBudget(t *testing.T) {
	r := New(fastConfig())

	boom := errors.New("boom")
	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls)
}

func TestExecuteHonoursContext(t *testing.T) {
	r := New(Config{MaxRetries: 10, BaseDelay: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(context.Context) error {
		return errors.New("always fails")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
