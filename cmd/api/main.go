package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/more-experts/support-portal/internal/api/http"
	"github.com/more-experts/support-portal/internal/api/http/handlers"
	"github.com/more-experts/support-portal/internal/auth"
	"github.com/more-experts/support-portal/internal/config"
	"github.com/more-experts/support-portal/internal/events"
	"github.com/more-experts/support-portal/internal/observability"
	"github.com/more-experts/support-portal/internal/persistence"
	"github.com/more-experts/support-portal/internal/presence"
	"github.com/more-experts/support-portal/internal/realtime"
	"github.com/more-experts/support-portal/internal/repository"
	"github.com/more-experts/support-portal/internal/repository/mongostore"
	"github.com/more-experts/support-portal/internal/repository/pgstore"
	"github.com/more-experts/support-portal/internal/service"
	"github.com/more-experts/support-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repos repository.Repositories
	healthDeps := map[string]handlers.Pinger{}

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}

		repos = pgstore.NewRepositories(pg.PoolHandle())
		healthDeps["postgres"] = pg

	case config.BackendMongo:
		mg, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			logger.Fatal("failed to connect mongo", zap.Error(err))
		}
		defer mg.Close(context.Background())

		if err := mongostore.EnsureIndexes(ctx, mg.Database()); err != nil {
			logger.Fatal("failed to ensure mongo indexes", zap.Error(err))
		}

		repos = mongostore.NewRepositories(mg.Database())
		healthDeps["mongo"] = mg
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	healthDeps["redis"] = redis

	tracker := presence.NewTracker(redis.Client, cfg.Presence.TTL(), logger)
	dispatcher := events.NewInMemoryDispatcher(logger)
	hub := realtime.NewHub(logger)
	worker.StartRealtimeBridge(dispatcher, hub, logger)

	chatService := service.NewChatService(service.ChatDependencies{
		ConversationRepo: repos.Conversations,
		MessageStore:     repos.Messages,
		Presence:         tracker,
		Dispatcher:       dispatcher,
		Logger:           logger,
	})
	userService := service.NewUserService(repos.Users, cfg.Auth.BcryptCost)
	notificationService := service.NewNotificationService(repos.Notifications, dispatcher, logger)
	feedbackService := service.NewFeedbackService(repos.Feedback)
	authService := service.NewAuthService(*cfg)
	adminMiddleware := auth.NewAdminMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, healthDeps),
		Auth:            handlers.NewAuthHandler(authService),
		Users:           handlers.NewUsersHandler(userService),
		Notifications:   handlers.NewNotificationsHandler(notificationService),
		Feedbacks:       handlers.NewFeedbacksHandler(feedbackService),
		Conversations:   handlers.NewConversationsHandler(chatService),
		Messages:        handlers.NewMessagesHandler(chatService),
		AdminMiddleware: adminMiddleware,
		Hub:             hub,
		Presence:        tracker,
		Logger:          logger,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
