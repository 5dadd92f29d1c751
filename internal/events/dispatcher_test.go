package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var calls []string
	d.Subscribe(EventMessageAdded, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	d.Subscribe(EventMessageAdded, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventMessageAdded}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPublishSkipsOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	called := false
	d.Subscribe(EventNotificationCreated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventMessageAdded}))
	assert.False(t, called)
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var reached bool
	d.Subscribe(EventConversationCreated, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventConversationCreated, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventConversationCreated}))
	assert.True(t, reached)
}

func TestHandlerErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	d.Subscribe(EventMessageAdded, func(_ context.Context, _ Event) error {
		return errors.New("socket gone")
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "evt-1", Type: EventMessageAdded}))

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, string(EventMessageAdded), fields["event_type"])
	assert.Equal(t, "evt-1", fields["event_id"])
}

func TestPublishWithoutSubscribersIsANoOp(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventMessageAdded}))
}
