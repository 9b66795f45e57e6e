package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeTransport struct {
	name    string
	err     error
	payload string
	calls   int
}

func (t *fakeTransport) Name() string {
	return t.name
}

func (t *fakeTransport) Deliver(ctx context.Context, payload string) error {
	t.calls++
	t.payload = payload
	return t.err
}

func TestDispatchFirstTransportWins(t *testing.T) {
	first := &fakeTransport{name: "mailslot"}
	second := &fakeTransport{name: "launch"}

	d := NewDispatcher(time.Second, &fakeClock{})
	d.Register(first)
	d.Register(second)

	delivered, results, err := d.Dispatch(context.Background(), "/editor")

	require.NoError(t, err)
	assert.Equal(t, "mailslot", delivered)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
	assert.Equal(t, "/editor", first.payload)
	assert.Zero(t, second.calls, "second transport must not run after a successful delivery")
}

func TestDispatchFallsThroughWhenNotAvailable(t *testing.T) {
	first := &fakeTransport{name: "mailslot", err: fmt.Errorf("no running instance: %w", ErrNotAvailable)}
	second := &fakeTransport{name: "launch"}

	d := NewDispatcher(time.Second, &fakeClock{})
	d.Register(first)
	d.Register(second)

	delivered, results, err := d.Dispatch(context.Background(), "/assets/Game")

	require.NoError(t, err)
	assert.Equal(t, "launch", delivered)
	require.Len(t, results, 2)
	assert.False(t, results[0].OK)
	assert.Contains(t, results[0].Error, "no running instance")
	assert.True(t, results[1].OK)
	assert.Equal(t, "/assets/Game", second.payload)
}

func TestDispatchFallsThroughOnOrdinaryError(t *testing.T) {
	first := &fakeTransport{name: "mailslot", err: errors.New("slot write failed")}
	second := &fakeTransport{name: "launch"}

	d := NewDispatcher(time.Second, &fakeClock{})
	d.Register(first)
	d.Register(second)

	delivered, _, err := d.Dispatch(context.Background(), "/editor")

	require.NoError(t, err)
	assert.Equal(t, "launch", delivered)
}

func TestDispatchAllTransportsFail(t *testing.T) {
	first := &fakeTransport{name: "mailslot", err: errors.New("slot write failed")}
	second := &fakeTransport{name: "launch", err: errors.New("exec failed")}

	d := NewDispatcher(time.Second, &fakeClock{})
	d.Register(first)
	d.Register(second)

	delivered, results, err := d.Dispatch(context.Background(), "/editor")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec failed")
	assert.Empty(t, delivered)
	require.Len(t, results, 2)
	assert.False(t, results[0].OK)
	assert.False(t, results[1].OK)
}

func TestDispatchNoTransports(t *testing.T) {
	d := NewDispatcher(time.Second, nil)

	_, _, err := d.Dispatch(context.Background(), "/editor")

	require.Error(t, err)
}

// stuckTransport blocks well past any test timeout without watching ctx,
// like a transport stuck in a blocking syscall.
type stuckTransport struct {
	name     string
	duration time.Duration
}

func (t *stuckTransport) Name() string {
	return t.name
}

func (t *stuckTransport) Deliver(ctx context.Context, payload string) error {
	time.Sleep(t.duration)
	return nil
}

func TestDispatchEnforcesTimeout(t *testing.T) {
	stuck := &stuckTransport{name: "mailslot", duration: 2 * time.Second}
	fallback := &fakeTransport{name: "launch"}

	d := NewDispatcher(20*time.Millisecond, &fakeClock{})
	d.Register(stuck)
	d.Register(fallback)

	start := time.Now()
	delivered, results, err := d.Dispatch(context.Background(), "/editor")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "launch", delivered)
	require.Len(t, results, 2)
	assert.False(t, results[0].OK)
	assert.Contains(t, results[0].Error, "timed out")
	assert.True(t, results[1].OK)
	assert.Less(t, elapsed, stuck.duration, "dispatch must not wait out a stuck transport")
}

func TestDispatchTimeoutFailsWhenNoFallback(t *testing.T) {
	d := NewDispatcher(20*time.Millisecond, &fakeClock{})
	d.Register(&stuckTransport{name: "mailslot", duration: 2 * time.Second})

	delivered, results, err := d.Dispatch(context.Background(), "/editor")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Empty(t, delivered)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK)
}

func TestDispatchWithinTimeoutSucceeds(t *testing.T) {
	d := NewDispatcher(time.Second, &fakeClock{})
	d.Register(&fakeTransport{name: "mailslot"})

	delivered, _, err := d.Dispatch(context.Background(), "/editor")

	require.NoError(t, err)
	assert.Equal(t, "mailslot", delivered)
}

func TestDispatchRecordsTimestamps(t *testing.T) {
	transport := &fakeTransport{name: "mailslot"}

	d := NewDispatcher(time.Second, &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)})
	d.Register(transport)

	_, results, err := d.Dispatch(context.Background(), "/editor")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].EndedAt.After(results[0].StartedAt))
}
