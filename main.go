package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"salon-backend/cache"
	"salon-backend/config"
	"salon-backend/models"
	"salon-backend/routes"
	"salon-backend/services"
	"salon-backend/storage"
	"salon-backend/utils"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store := buildStorage(cfg, logger)
	cacheStore := buildCache(cfg, logger)

	reconciler := services.NewReconciler(store, logger, cfg.ReconcileSpec)
	if err := reconciler.Start(); err != nil {
		logger.Fatal("failed to start reconciler", zap.Error(err))
	}
	defer reconciler.Stop()

	r := routes.SetupRouter(store, cacheStore, logger, cfg)
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildStorage(cfg *config.Config, logger *zap.Logger) storage.Storage {
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect database", zap.Error(err))
		}
		store, err := storage.NewGormStorage(db)
		if err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		logger.Info("postgres connected")
		return store
	}

	logger.Warn("DATABASE_URL not set, using volatile in-memory storage")
	mem := storage.NewMemStorage()
	mem.SeedDemoServices()
	seedAdminUser(mem, logger)
	return mem
}

func buildCache(cfg *config.Config, logger *zap.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewNoop()
	}
	redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))
	return redisCache
}

// seedAdminUser gives the demo instance a login. The durable store is
// provisioned out of band.
func seedAdminUser(store storage.Storage, logger *zap.Logger) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}
	if _, err := store.CreateUser(&models.User{Username: "admin", Password: hashed}); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}
}
