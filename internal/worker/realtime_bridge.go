package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/events"
	"github.com/more-experts/support-portal/internal/realtime"
)

// StartRealtimeBridge subscribes the WebSocket hub to domain events. The hub
// reference is passed in explicitly; nothing reaches it through global state.
func StartRealtimeBridge(dispatcher events.Dispatcher, hub *realtime.Hub, logger *zap.Logger) {
	if dispatcher == nil || hub == nil {
		return
	}

	dispatcher.Subscribe(events.EventMessageAdded, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.MessageAddedPayload)
		if !ok {
			logger.Warn("unexpected payload for message_added event")
			return nil
		}
		hub.Publish(event.ConversationID, realtime.EventNewMessage, payload.Message)
		hub.Broadcast(realtime.EventNewMessageNotification, payload.Message)
		return nil
	})

	dispatcher.Subscribe(events.EventNotificationCreated, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.NotificationCreatedPayload)
		if !ok {
			logger.Warn("unexpected payload for notification_created event")
			return nil
		}
		hub.Broadcast(realtime.EventNewNotification, payload.Notification)
		return nil
	})
}
