package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/state"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/metrics"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)
	baseLog := logger.Get().WithField("run_id", uuid.NewString())
	baseLog.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Endpoint: %s, Interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.Endpoint, cfg.RetryInterval)

	// Without all three credentials the bot cannot poll or notify. No
	// notification is attempted here: the notifier itself depends on them.
	if !cfg.Credentials.Complete() {
		baseLog.Error("Required credentials are missing (PRACTICUM_TOKEN, TELEGRAM_TOKEN, TELEGRAM_CHAT_ID). Bot will not start.")
		return
	}

	// State store: Postgres when configured, in-memory otherwise.
	var stateRepo state.Repository
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			baseLog.Fatalf("Could not connect to database: %v", err)
		}
		defer db.Close()
		pgRepo := idb.NewPostgresStateRepository(db)
		if err := pgRepo.InitSchema(context.Background()); err != nil {
			baseLog.Fatalf("Could not initialize bot_state schema: %v", err)
		}
		stateRepo = pgRepo
		baseLog.Info("Postgres state repository initialized.")
	} else {
		stateRepo = idb.NewMemoryStateRepository()
		baseLog.Warn("DATABASE_URL not set; poll state will not survive restarts.")
	}

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		m = metrics.NewMetrics("homework_bot")
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			baseLog.Infof("Metrics endpoint listening on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				baseLog.Errorf("Metrics server stopped: %v", err)
			}
		}()
	}

	// The bot only ever sends, so no poller is attached.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.Credentials.TelegramToken})
	if err != nil {
		baseLog.Fatalf("Could not create Telegram bot: %v", err)
	}

	notifier := app.NewTelegramNotifier(
		telegram.NewTelebotAdapter(bot),
		cfg.Credentials.ChatID,
		baseLog.WithField("component", "notifier"),
		m,
	)

	client := practicum.NewClient(
		cfg.Endpoint,
		cfg.Credentials.PracticumToken,
		cfg.RequestTimeout,
		baseLog.WithField("component", "practicum"),
	)

	pollService := app.NewPollService(
		cfg.Credentials,
		client,
		notifier,
		stateRepo,
		m,
		baseLog.WithField("component", "poller"),
		cfg.RetryInterval,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := pollService.RestoreState(ctx); err != nil {
		baseLog.Fatalf("Could not restore persisted bot state: %v", err)
	}

	var digest *scheduler.DigestScheduler
	if cfg.DigestCronSpec != "" {
		digest = scheduler.NewDigestScheduler(
			pollService,
			notifier,
			baseLog.WithField("component", "digest"),
			cfg.DigestCronSpec,
		)
		if err := digest.Start(); err != nil {
			baseLog.Fatalf("Could not start digest scheduler: %v", err)
		}
	}

	go pollService.Run(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	baseLog.Info("Shutting down application...")
	cancel()
	if digest != nil {
		digest.Stop()
	}
	baseLog.Info("Application shut down gracefully.")
}
