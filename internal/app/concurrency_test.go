package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParallel2Partial_Independent(t *testing.T) {
	var slowFinished atomic.Bool

	todos, quote := Parallel2Partial(context.Background(),
		func(context.Context) ([]string, error) {
			time.Sleep(20 * time.Millisecond)
			slowFinished.Store(true)

			return []string{"a", "b"}, nil
		},
		func(context.Context) (string, error) { return "", errors.New("no quotes") },
	)

	assert.True(t, slowFinished.Load(), "a failure must not cut the other call short")
	assert.True(t, todos.OK())
	assert.Equal(t, []string{"a", "b"}, todos.Value)
	assert.EqualError(t, quote.Err, "no quotes")
}

func TestParallel2Partial_RunsConcurrently(t *testing.T) {
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)

		Parallel2Partial(context.Background(),
			func(context.Context) (int, error) { <-release; return 1, nil },
			func(context.Context) (int, error) { close(release); return 2, nil },
		)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("functions did not run concurrently")
	}
}
