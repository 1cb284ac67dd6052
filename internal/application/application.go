package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"feedback_widget/internal/config"
	"feedback_widget/internal/domain/service/feedback"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/infrastructure/cache"
	"feedback_widget/internal/infrastructure/metrics"
	"feedback_widget/internal/infrastructure/notifier"
	"feedback_widget/internal/infrastructure/persistence"
	"feedback_widget/internal/infrastructure/queue"
	"feedback_widget/internal/server"
	"feedback_widget/internal/transport/bot"
	"feedback_widget/internal/transport/bot/handler"
	"feedback_widget/internal/worker"
	"feedback_widget/pkg/application/connectors"
	"feedback_widget/pkg/application/modules"
	"feedback_widget/pkg/httpx"
	"feedback_widget/pkg/logx"
	"feedback_widget/pkg/middlewarex"
	"feedback_widget/pkg/probe"
)

const startupMessage = "🚀 Feedback widget alerts are on."

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	log.Info("config loaded", slog.String("name", cfg.App.Name), slog.String("version", cfg.App.Version))

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err = pg.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if err = persistence.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Info("database connection OK")

	// 3. Redis: кэш имён и очередь алертов
	rds := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rds.Client(ctx)
	defer rds.Close(ctx)

	// 4. Metrics
	registry := metrics.NewRegistry()
	collectors := metrics.New(registry)

	// 5. Repositories & services
	feedbackRepo := persistence.NewFeedbackRepository(db)
	organizationRepo := persistence.NewOrganizationRepository(db)
	nameCache := cache.NewNameCache(redisClient, cfg.Widget.NameCacheTTL)

	var alerts feedback.AlertQueue

	if cfg.Alerts.Enabled() {
		alerts = queue.NewProducer(asynq.NewClientFromRedisClient(redisClient), cfg.Alerts.Queue, cfg.Alerts.MaxRetry)
	}

	svc := feedback.NewService(feedbackRepo, organizationRepo, nameCache, alerts, collectors, feedback.Options{
		AlertThreshold: cfg.Alerts.RatingThreshold,
		NameCacheTTL:   cfg.Widget.NameCacheTTL,
	})

	sessions := widget.NewRegistry(svc, svc, collectors, widget.Options{
		CountdownSeed:     cfg.Widget.CountdownSeed,
		TickInterval:      cfg.Widget.TickInterval,
		ReviewURLTemplate: cfg.Widget.ReviewURLTemplate,
		SessionTTL:        cfg.Widget.SessionTTL,
	})

	// 6. HTTP
	pages, err := server.NewPageServer(sessions)
	if err != nil {
		return fmt.Errorf("server.NewPageServer: %w", err)
	}

	srv := server.NewServer(
		server.NewWidgetServer(sessions),
		pages,
		server.NewOrganizationServer(svc, cfg.HTTP.StaffToken),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sessions.Run(ctx)
	})

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: map[string]probe.Check{
			"postgres": pg.Ping,
			"redis":    rds.Ping,
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	// 7. Alerts: воркер очереди и бот персонала
	if cfg.Alerts.Enabled() {
		if err = runAlerts(ctx, g, log, cfg, rds, svc, collectors, masker); err != nil {
			return err
		}
	} else {
		log.Warn("alerts disabled: ALERTS_BOT_TOKEN is empty")
	}

	log.Info("application started", slog.String("public_url", cfg.HTTP.PublicURL))

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopping...")

	return nil
}

func runAlerts(
	ctx context.Context,
	g *errgroup.Group,
	log *slog.Logger,
	cfg config.Config,
	rds *connectors.Redis,
	svc *feedback.Service,
	collectors *metrics.Collectors,
	masker logx.SensitiveDataMasker,
) error {
	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
			httpx.WithSensitiveDataMasker(masker),
		),
	}

	telegramBot, err := notifier.NewBot(cfg.Alerts.BotToken, httpClient)
	if err != nil {
		return fmt.Errorf("notifier bot: %w", err)
	}

	alertBot := notifier.NewTelegramBot(telegramBot, cfg.Alerts.ChatID)

	log.Info("Testing bot notification...")

	if err = alertBot.SendText(ctx, startupMessage); err != nil {
		log.Error("Bot test failed! Check ALERTS_BOT_TOKEN and ALERTS_CHAT_ID", logx.Error(err))
	} else {
		log.Info("Bot test passed! Message sent.")
	}

	muted := worker.NewMuteList()
	alertWorker := worker.NewAlertWorker(alertBot, collectors, muted).
		WithRateControl(cfg.Alerts.SendInterval)

	modules.AsynqServer{
		Redis:           rds.Client(ctx),
		Concurrency:     cfg.Alerts.Concurrency,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, modules.AsynqQueues{cfg.Alerts.Queue: 1}, modules.AsynqHandler{
		Pattern: queue.TypeLowRating,
		Handle:  alertWorker.Handle,
	})

	if len(cfg.Alerts.AdminIDs) == 0 {
		log.Warn("staff bot disabled: ALERTS_ADMIN_IDS is empty")

		return nil
	}

	staffBot := bot.New(telegramBot, handler.New(svc, muted, cfg.HTTP.PublicURL), cfg.Alerts.AdminIDs)

	g.Go(func() error {
		log.Info("staff bot started listening")

		if err := staffBot.Run(ctx); err != nil {
			return fmt.Errorf("staffBot.Run: %w", err)
		}

		return nil
	})

	return nil
}
