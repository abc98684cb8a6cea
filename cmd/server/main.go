package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulsemark/engage/internal/api"
	"github.com/pulsemark/engage/internal/config"
	"github.com/pulsemark/engage/internal/delivery"
	"github.com/pulsemark/engage/internal/pkg/distlock"
	"github.com/pulsemark/engage/internal/pkg/logger"
	"github.com/pulsemark/engage/internal/repository/postgres"
	"github.com/pulsemark/engage/internal/service/analytics"
	"github.com/pulsemark/engage/internal/service/campaign"
	"github.com/pulsemark/engage/internal/service/social"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	db, err := postgres.Open(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("database connected")

	deliverer, err := buildDeliverer(cfg)
	if err != nil {
		log.Fatalf("Failed to configure delivery provider: %v", err)
	}
	logger.Info("delivery provider configured", "provider", cfg.Delivery.Provider)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Analytics degrade to direct queries, so a missing cache is a
			// warning, not a startup failure.
			logger.Warn("redis unreachable, analytics cache disabled", "addr", cfg.Redis.Addr, "error", err)
			redisClient = nil
		}
	}

	socialSvc := social.NewService(postgres.NewSocialRepo(db))
	campaignSvc := campaign.NewService(
		postgres.NewCampaignRepo(db),
		deliverer,
		cfg.Delivery.FromName,
		cfg.Delivery.FromEmail,
	)
	campaignSvc.SetLockFactory(func(key string) distlock.Lock {
		return distlock.New(redisClient, db, key, 5*time.Minute)
	})
	analyticsSvc := analytics.NewService(postgres.NewAnalyticsRepo(db), redisClient)

	server := api.NewServer(socialSvc, campaignSvc, analyticsSvc)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		errCh <- server.ListenAndServe(cfg.Server.Addr())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server error: %v", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	logger.Info("server stopped")
}

func buildDeliverer(cfg *config.Config) (delivery.Deliverer, error) {
	switch cfg.Delivery.Provider {
	case "ses":
		return delivery.NewSESSender(
			context.Background(),
			cfg.Delivery.SES.AccessKey,
			cfg.Delivery.SES.SecretKey,
			cfg.Delivery.SES.Region,
		)
	default:
		return delivery.NewSparkPostSender(
			cfg.Delivery.SparkPost.APIKey,
			cfg.Delivery.SparkPost.BaseURL,
		), nil
	}
}
