package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recvEnvelope(t *testing.T, c *Client) envelope {
	t.Helper()
	select {
	case payload := <-c.Receive():
		var env envelope
		require.NoError(t, json.Unmarshal(payload, &env))
		return env
	default:
		t.Fatal("expected a pending event")
		return envelope{}
	}
}

func TestPublishReachesOnlyRoomMembers(t *testing.T) {
	hub := NewHub(zap.NewNop())

	viewer := NewClient(hub, nil, "conv-1")
	other := NewClient(hub, nil, "conv-2")
	hub.Register(viewer)
	hub.Register(other)
	hub.Join("conv-1", viewer)
	hub.Join("conv-2", other)

	hub.Publish("conv-1", EventNewMessage, map[string]string{"text": "hello"})

	env := recvEnvelope(t, viewer)
	assert.Equal(t, EventNewMessage, env.Event)

	select {
	case <-other.Receive():
		t.Fatal("client outside the room must not receive the event")
	default:
	}
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	hub := NewHub(zap.NewNop())

	a := NewClient(hub, nil, "conv-1")
	b := NewClient(hub, nil, "conv-2")
	hub.Register(a)
	hub.Register(b)
	hub.Join("conv-1", a)

	hub.Broadcast(EventNewNotification, map[string]string{"title": "maintenance"})

	for _, c := range []*Client{a, b} {
		env := recvEnvelope(t, c)
		assert.Equal(t, EventNewNotification, env.Event)
	}
}

func TestUnregisterLeavesAllRooms(t *testing.T) {
	hub := NewHub(zap.NewNop())

	c := NewClient(hub, nil, "conv-1")
	hub.Register(c)
	hub.Join("conv-1", c)
	require.Equal(t, 1, hub.RoomSize("conv-1"))

	hub.Unregister(c)
	assert.Zero(t, hub.RoomSize("conv-1"))

	hub.Publish("conv-1", EventNewMessage, "late")
	select {
	case <-c.Receive():
		t.Fatal("unregistered client must not receive events")
	default:
	}
}

func TestLateJoinerMissesEarlierEvents(t *testing.T) {
	hub := NewHub(zap.NewNop())

	hub.Publish("conv-9", EventNewMessage, "before anyone joined")

	late := NewClient(hub, nil, "conv-9")
	hub.Register(late)
	hub.Join("conv-9", late)

	select {
	case <-late.Receive():
		t.Fatal("delivery is live-only, no replay")
	default:
	}
}

func TestSlowClientIsSkippedNotBlocked(t *testing.T) {
	hub := NewHub(zap.NewNop())

	slow := NewClient(hub, nil, "conv-1")
	hub.Register(slow)
	hub.Join("conv-1", slow)

	// fill the buffer, further publishes must drop instead of deadlocking
	for i := 0; i < cap(slow.Receive())+5; i++ {
		hub.Publish("conv-1", EventNewMessage, i)
	}
	assert.Equal(t, cap(slow.Receive()), len(slow.Receive()))
}
