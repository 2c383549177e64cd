package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/you/streamsvc/internal/config"
	"github.com/you/streamsvc/internal/infrastructure/auth"
	"github.com/you/streamsvc/internal/infrastructure/database"
	"github.com/you/streamsvc/internal/infrastructure/notifications"
)

const shutdownTimeout = 5 * time.Second

// Run connects to every backing service, serves HTTP until ctx is cancelled,
// then drains in-flight requests and closes the connections.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(gdb); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer rdb.Close()
	if err := rdb.Ping(ctx); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return fmt.Errorf("failed to init casbin: %w", err)
	}

	producer := notifications.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword, logger.Named("kafka"))
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warn("failed to close kafka producer", zap.Error(err))
		}
	}()
	notifier := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, producer, logger.Named("notifications"))

	c := NewContainer(cfg, Infrastructure{
		DB:       gdb,
		Redis:    rdb.Client,
		Casbin:   cas,
		Notifier: notifier,
	}, logger)
	if err := auth.EnsureDefaultPolicies(c.PolicySvc); err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
