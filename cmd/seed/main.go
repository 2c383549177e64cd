package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/you/streamsvc/internal/config"
	"github.com/you/streamsvc/internal/infrastructure/auth"
	"github.com/you/streamsvc/internal/infrastructure/database"
	"github.com/you/streamsvc/internal/infrastructure/repositories"
	"github.com/you/streamsvc/internal/logging"
	"github.com/you/streamsvc/internal/services"
)

// Migrates the configured database and loads the bilingual sample catalog.
// Sample users sign in with SEED_PASSWORD, or password123 when unset.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Dev: cfg.LogDev})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DSN, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		logger.Fatal("casbin", zap.Error(err))
	}
	policies := services.NewPolicyService(cas.E)
	if err := auth.EnsureDefaultPolicies(policies); err != nil {
		logger.Fatal("policies", zap.Error(err))
	}
	rules, err := policies.GetPolicies()
	if err != nil {
		logger.Fatal("policies", zap.Error(err))
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}
	hash, err := auth.NewPasswordService().Hash(password)
	if err != nil {
		logger.Fatal("hash password", zap.Error(err))
	}

	result, err := repositories.Seed(context.Background(), db, hash)
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	logger.Info("database seeded",
		zap.Int("users", result.Users),
		zap.Int("movies", result.Movies),
		zap.Int("shows", result.Shows),
		zap.Int("channels", result.Channels),
		zap.Int("articles", result.Articles),
		zap.Int("policies", len(rules)),
	)
}
