package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/events"
	"github.com/more-experts/support-portal/internal/realtime"
)

type wireEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func drain(t *testing.T, c *realtime.Client) []wireEvent {
	t.Helper()
	var out []wireEvent
	for {
		select {
		case payload := <-c.Receive():
			var env wireEvent
			require.NoError(t, json.Unmarshal(payload, &env))
			out = append(out, env)
		default:
			return out
		}
	}
}

func TestMessageEventFansOutToRoomAndGlobal(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	StartRealtimeBridge(dispatcher, hub, zap.NewNop())

	viewer := realtime.NewClient(hub, nil, "user-1")
	dashboard := realtime.NewClient(hub, nil, "")
	hub.Register(viewer)
	hub.Register(dashboard)
	hub.Join("user-1", viewer)

	msg := domain.Message{ConversationID: "user-1", Role: domain.RoleUser, Text: "hello"}
	err := dispatcher.Publish(context.Background(), events.Event{
		Type:           events.EventMessageAdded,
		ConversationID: "user-1",
		Payload:        events.MessageAddedPayload{Message: msg},
	})
	require.NoError(t, err)

	viewerEvents := drain(t, viewer)
	require.Len(t, viewerEvents, 2)
	assert.Equal(t, realtime.EventNewMessage, viewerEvents[0].Event)
	assert.Equal(t, realtime.EventNewMessageNotification, viewerEvents[1].Event)

	dashboardEvents := drain(t, dashboard)
	require.Len(t, dashboardEvents, 1)
	assert.Equal(t, realtime.EventNewMessageNotification, dashboardEvents[0].Event)
}

func TestNotificationEventBroadcasts(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	StartRealtimeBridge(dispatcher, hub, zap.NewNop())

	a := realtime.NewClient(hub, nil, "user-1")
	b := realtime.NewClient(hub, nil, "user-2")
	hub.Register(a)
	hub.Register(b)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventNotificationCreated,
		Payload: events.NotificationCreatedPayload{Notification: domain.Notification{Title: "maintenance"}},
	})
	require.NoError(t, err)

	for _, c := range []*realtime.Client{a, b} {
		got := drain(t, c)
		require.Len(t, got, 1)
		assert.Equal(t, realtime.EventNewNotification, got[0].Event)
	}
}

func TestMalformedPayloadIsIgnored(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	StartRealtimeBridge(dispatcher, hub, zap.NewNop())

	c := realtime.NewClient(hub, nil, "user-1")
	hub.Register(c)
	hub.Join("user-1", c)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:           events.EventMessageAdded,
		ConversationID: "user-1",
		Payload:        "not a message payload",
	})
	require.NoError(t, err)
	assert.Empty(t, drain(t, c))
}
