package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-hub/portfolio-backend/config"
	"github.com/portfolio-hub/portfolio-backend/internal/bootstrap"
	"github.com/portfolio-hub/portfolio-backend/internal/github"
	"github.com/portfolio-hub/portfolio-backend/internal/notify"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/service"
	"github.com/portfolio-hub/portfolio-backend/internal/refresh"
	"github.com/portfolio-hub/portfolio-backend/internal/selection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	rdb := openRedis(cfg)

	toasts := notify.NewStore()
	defer toasts.Close()

	ghClient := github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Token)
	catalog := service.NewCatalog(cfg.GitHub.Username, cfg.GitHub.CacheTTL, ghClient, rdb)

	if cfg.GitHub.RefreshSpec != "" && cfg.GitHub.Username != "" {
		scheduler := refresh.NewScheduler(catalog, toasts)
		if err := scheduler.Start(cfg.GitHub.RefreshSpec); err == nil {
			defer scheduler.Stop()
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigin:  cfg.Server.CORSOrigin,
		Catalog:     catalog,
		Toasts:      toasts,
		Selection:   selection.NewStore(),
		Redis:       rdb,
	})

	log.Printf("API running on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// openRedis connects to redis for the catalog cache and theme preference.
// The service runs without it: caching and prefs are simply disabled.
func openRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("redis unavailable at %s, caching disabled: %v", cfg.Redis.Addr, err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
