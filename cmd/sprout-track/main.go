package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/leonguyen52/sprout-track-sub004/internal/config"
	apphttp "github.com/leonguyen52/sprout-track-sub004/internal/http"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/activities"
	authfeature "github.com/leonguyen52/sprout-track-sub004/internal/http/features/auth"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/babies"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/family"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/notify"
	settingsfeature "github.com/leonguyen52/sprout-track-sub004/internal/http/features/settings"
	setupfeature "github.com/leonguyen52/sprout-track-sub004/internal/http/features/setup"
	"github.com/leonguyen52/sprout-track-sub004/internal/notification"
	"github.com/leonguyen52/sprout-track-sub004/internal/setup"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
	"github.com/leonguyen52/sprout-track-sub004/pkg/repository"
)

func main() {
	// Load .env if present; real deployments use environment variables.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := repository.NewDB(repository.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	familiesRepo := repository.NewFamiliesRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	invitesRepo := repository.NewSetupInvitesRepository(db)
	babiesRepo := repository.NewBabiesRepository(db)
	feedRepo := repository.NewFeedLogsRepository(db)
	diaperRepo := repository.NewDiaperLogsRepository(db)
	sleepRepo := repository.NewSleepLogsRepository(db)
	medicineRepo := repository.NewMedicineLogsRepository(db)
	measurementsRepo := repository.NewMeasurementsRepository(db)
	emailConfigRepo := repository.NewEmailConfigRepository(db)

	sessionService := auth.NewSessionService(auth.SessionConfig{
		AccessTokenTTL: cfg.AccessTokenTTL,
		JWTSecret:      []byte(cfg.JWTSecret),
		Issuer:         cfg.JWTIssuer,
	})

	setupService := setup.NewService(setup.Config{
		InviteTTL:  cfg.SetupInviteTTL,
		DefaultPIN: cfg.DefaultPIN,
	}, db, familiesRepo, settingsRepo, invitesRepo)

	dispatcher := notification.NewDispatcher(logger, emailConfigRepo)
	pushClient := notification.NewPushClient(logger, cfg.PushEndpoint)

	handlers := apphttp.Handlers{
		Setup:  setupfeature.NewHandler(logger, setupService),
		Family: family.NewHandler(logger, familiesRepo, setupService, dispatcher, cfg.AppBaseURL),
		Auth:   authfeature.NewHandler(logger, familiesRepo, settingsRepo, sessionService),
		Babies: babies.NewHandler(logger, babiesRepo),
		Activities: activities.NewHandler(
			logger, feedRepo, diaperRepo, sleepRepo, medicineRepo, measurementsRepo,
		),
		Settings: settingsfeature.NewHandler(logger, settingsRepo, emailConfigRepo),
		Notify:   notify.NewHandler(logger, pushClient, cfg.PushEndpoint),
	}

	router := apphttp.NewRouter(logger, cfg, sessionService, handlers)

	addr := fmt.Sprintf("%s:%d", cfg.ServerAddr, cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
