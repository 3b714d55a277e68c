package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresher_DropsOverlappingRequests(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	r := NewRefresher(func() error {
		started <- struct{}{}
		<-release
		return nil
	}, time.Minute, nil)

	done := make(chan bool, 1)
	go func() { done <- r.Refresh() }()
	<-started

	// A request arriving mid-pass is dropped, not queued.
	assert.False(t, r.Refresh())

	close(release)
	assert.True(t, <-done)
}

func TestRefresher_RunStopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	r := NewRefresher(func() error {
		calls.Add(1)
		return nil
	}, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	require.NoError(t, r.Run(ctx))
	assert.GreaterOrEqual(t, calls.Load(), int32(1), "the immediate pass always runs")
}

func TestRefresher_PassErrorsAreSoft(t *testing.T) {
	r := NewRefresher(func() error {
		return errors.New("rule source vanished")
	}, time.Minute, nil)

	assert.True(t, r.Refresh(), "a failed pass still counts as having run")
	assert.True(t, r.Refresh(), "the in-flight flag is released after a failure")
}
