package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/daylayout/internal/model"
)

type emitted struct {
	event string
	args  []any
}

type fakeEmitter struct {
	calls []emitted
	err   error
}

func (f *fakeEmitter) Emit(ev string, args ...any) error {
	f.calls = append(f.calls, emitted{event: ev, args: args})
	return f.err
}

var sample = []model.LaidOutEvent{
	{Event: model.Event{ID: "1", Start: 60, End: 120}, Left: 0, Top: 60, Width: 600},
}

func TestPublish_EmitsLayoutEvent(t *testing.T) {
	t.Parallel()

	fake := &fakeEmitter{}
	p := New(fake)

	require.NoError(t, p.Publish(context.Background(), sample))

	require.Len(t, fake.calls, 1)
	assert.Equal(t, EventName, fake.calls[0].event)
	require.Len(t, fake.calls[0].args, 1)
	payload, ok := fake.calls[0].args[0].(Payload)
	require.True(t, ok)
	require.Len(t, payload.Events, 1)
	assert.Equal(t, "1", payload.Events[0].ID)
	assert.Equal(t, 60, payload.Events[0].Height)
}

func TestPublish_EmitError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := New(&fakeEmitter{err: boom}).Publish(context.Background(), sample)

	assert.ErrorIs(t, err, boom)
}

func TestPublish_CancelledContext(t *testing.T) {
	t.Parallel()

	fake := &fakeEmitter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(fake).Publish(ctx, sample)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.calls)
}

func TestPublish_AfterClose(t *testing.T) {
	t.Parallel()

	p := New(&fakeEmitter{})
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	assert.ErrorIs(t, p.Publish(context.Background(), sample), ErrNotConnected)
}

func TestConnect_RejectsBadURL(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), Options{URL: "ftp://renderer.local"})
	assert.ErrorContains(t, err, "unsupported URL scheme")

	_, err = Connect(context.Background(), Options{URL: "://nope"})
	assert.ErrorContains(t, err, "failed to parse URL")
}
