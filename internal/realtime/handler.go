package realtime

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/presence"
)

// UpgradeRequired rejects plain HTTP requests on the WebSocket route.
func UpgradeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Handler upgrades the connection, joins the requested conversation room and
// runs the read/write pumps until the peer disconnects. Joining marks the
// conversation online; disconnecting marks it offline.
func Handler(hub *Hub, tracker *presence.Tracker, logger *zap.Logger) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		conversationID := conn.Query("conversationId")
		client := NewClient(hub, conn, conversationID)

		hub.Register(client)
		if conversationID != "" {
			hub.Join(conversationID, client)
			if err := tracker.MarkOnline(context.Background(), conversationID); err != nil {
				logger.Warn("mark online", zap.String("conversation_id", conversationID), zap.Error(err))
			}
		}
		logger.Info("ws connected", zap.String("conversation_id", conversationID))

		defer func() {
			hub.Unregister(client)
			if conversationID != "" {
				if err := tracker.MarkOffline(context.Background(), conversationID); err != nil {
					logger.Warn("mark offline", zap.String("conversation_id", conversationID), zap.Error(err))
				}
			}
			logger.Info("ws disconnected", zap.String("conversation_id", conversationID))
		}()

		go client.writePump()

		heartbeat := func(ctx context.Context) {
			if conversationID == "" {
				return
			}
			if err := tracker.Refresh(ctx, conversationID); err != nil {
				logger.Warn("presence refresh", zap.Error(err))
			}
		}
		client.readPump(heartbeat)
	})
}
