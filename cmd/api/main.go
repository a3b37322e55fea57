package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/mess-service/internal/api/http"
	"github.com/spec-kit/mess-service/internal/api/http/handlers"
	"github.com/spec-kit/mess-service/internal/auth"
	"github.com/spec-kit/mess-service/internal/config"
	"github.com/spec-kit/mess-service/internal/events"
	"github.com/spec-kit/mess-service/internal/menu"
	"github.com/spec-kit/mess-service/internal/observability"
	"github.com/spec-kit/mess-service/internal/persistence"
	"github.com/spec-kit/mess-service/internal/repository"
	"github.com/spec-kit/mess-service/internal/service"
	"github.com/spec-kit/mess-service/internal/session"
	"github.com/spec-kit/mess-service/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	studentRepo := repository.NewStudentRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	preorderRepo := repository.NewPreorderRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)

	sessions := session.NewRegistry()
	dispatcher := events.NewInMemoryDispatcher()
	catalog := menu.NewCatalog(
		cfg.Menu.Path,
		redis.Client,
		time.Duration(cfg.Redis.MenuCacheTTLSec)*time.Second,
		logger,
	)

	identityService := service.NewIdentityService(studentRepo)
	orderService := service.NewOrderService(service.OrderDependencies{
		StudentRepo:  studentRepo,
		OrderRepo:    orderRepo,
		PreorderRepo: preorderRepo,
		Menu:         catalog,
		Dispatcher:   dispatcher,
	})
	preorderService := service.NewPreorderService(service.PreorderDependencies{
		StudentRepo:  studentRepo,
		PreorderRepo: preorderRepo,
		Menu:         catalog,
		Dispatcher:   dispatcher,
	})
	subscriptionService := service.NewSubscriptionService(service.SubscriptionDependencies{
		StudentRepo:      studentRepo,
		SubscriptionRepo: subscriptionRepo,
		Dispatcher:       dispatcher,
	})

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()
	sessionMiddleware := auth.NewSessionMiddleware(cfg.Session.CookieName, sessions)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.AllowedOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Students:          handlers.NewStudentsHandler(identityService, sessions, cfg.Session.CookieName),
		Orders:            handlers.NewOrdersHandler(orderService),
		Preorders:         handlers.NewPreordersHandler(preorderService),
		Subscriptions:     handlers.NewSubscriptionsHandler(subscriptionService),
		Menu:              handlers.NewMenuHandler(catalog),
		Images:            handlers.NewImagesHandler(cfg.Images),
		SessionMiddleware: sessionMiddleware,
		AdminAuth:         auth.AdminAuth(cfg.Admin),
		ImageDir:          cfg.Images.Dir,
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
