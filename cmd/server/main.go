package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/meetpoll/internal/app"
	"github.com/Freeeeeet/meetpoll/internal/config"
	"github.com/Freeeeeet/meetpoll/internal/controller"
	"github.com/Freeeeeet/meetpoll/internal/notifier"
	"github.com/Freeeeeet/meetpoll/internal/repository"
	"github.com/Freeeeeet/meetpoll/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	meetingRepo := repository.NewMeetingRepository(pool)
	responseRepo := repository.NewResponseRepository(pool)

	// Telegram-уведомления опциональны
	var responseNotifier service.Notifier
	if cfg.NotificationsEnabled() {
		tg, err := notifier.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Fatal("Failed to create telegram notifier", zap.Error(err))
		}
		responseNotifier = tg
		logger.Info("Telegram notifications enabled", zap.Int64("chat_id", cfg.TelegramChatID))
	}

	meetingService := service.NewMeetingService(meetingRepo, responseRepo, responseNotifier, logger)
	httpController := controller.NewHTTPController(meetingService, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpController.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("Starting meetpoll server",
			zap.String("environment", cfg.Environment),
			zap.String("addr", cfg.HTTPAddr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
