package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/api/http/handlers"
	"github.com/more-experts/support-portal/internal/auth"
	"github.com/more-experts/support-portal/internal/presence"
	"github.com/more-experts/support-portal/internal/realtime"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Users           *handlers.UsersHandler
	Notifications   *handlers.NotificationsHandler
	Feedbacks       *handlers.FeedbacksHandler
	Conversations   *handlers.ConversationsHandler
	Messages        *handlers.MessagesHandler
	AdminMiddleware *auth.AdminMiddleware
	Hub             *realtime.Hub
	Presence        *presence.Tracker
	Logger          *zap.Logger
}

// RegisterRoutes wires HTTP routes. Chat and read endpoints stay open for the
// mobile client; destructive admin routes sit behind the admin session token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api")

	api.Get("/users", cfg.Users.List)
	api.Post("/users", cfg.Users.Create)
	api.Patch("/users/:id", cfg.Users.Patch)
	api.Delete("/users/:id", cfg.AdminMiddleware.Handle, cfg.Users.Delete)

	api.Get("/notifications", cfg.Notifications.List)
	api.Post("/notifications", cfg.AdminMiddleware.Handle, cfg.Notifications.Create)
	api.Delete("/notifications", cfg.AdminMiddleware.Handle, cfg.Notifications.Delete)

	api.Get("/feedbacks", cfg.Feedbacks.List)

	api.Get("/conversations", cfg.Conversations.List)
	api.Post("/conversations", cfg.Conversations.GetOrCreate)
	api.Patch("/conversations", cfg.Conversations.MarkRead)

	api.Get("/messages", cfg.Messages.List)
	api.Post("/messages", cfg.Messages.Create)

	app.Use("/ws", realtime.UpgradeRequired())
	app.Get("/ws", realtime.Handler(cfg.Hub, cfg.Presence, cfg.Logger))
}
