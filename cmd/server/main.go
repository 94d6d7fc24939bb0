// Package main provides the API server entry point for the wallet wrapped service.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wallet-wrapped/internal/adapter"
	"github.com/wallet-wrapped/internal/api"
	"github.com/wallet-wrapped/internal/config"
	"github.com/wallet-wrapped/internal/logging"
	"github.com/wallet-wrapped/internal/service"
	"github.com/wallet-wrapped/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	logLevel := logging.ParseLevel(cfg.Logging.Level)
	logFormat := logging.ParseFormat(cfg.Logging.Format)
	logging.Init(logLevel, logFormat)

	logger := logging.Global()
	logger.WithFields(map[string]interface{}{
		"level":  cfg.Logging.Level,
		"format": cfg.Logging.Format,
	}).Info("Structured logging initialized")

	// Connect to Redis; the service degrades to uncached computation when
	// the cache is unreachable
	var snapshotCache service.SnapshotCache
	redisCache, err := storage.NewRedisCache(&cfg.Redis)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, snapshots will not be cached")
	} else {
		defer redisCache.Close()
		snapshotCache = storage.NewSnapshotCache(redisCache, cfg.Cache.TTL)
		logger.Info("Redis connection established")
	}

	// Initialize provider clients
	moralis := adapter.NewMoralisClient(&cfg.Providers.Moralis)
	neynar := adapter.NewNeynarClient(&cfg.Providers.Neynar)

	var nftProvider service.NFTProvider
	if cfg.Providers.Alchemy.APIKey != "" && cfg.Providers.Alchemy.ContractAddress != "" {
		nftProvider = adapter.NewAlchemyClient(&cfg.Providers.Alchemy)
	} else {
		logger.Warn("Alchemy not configured, wallet NFT lookups disabled")
	}

	wrappedService := service.NewWrappedService(moralis, neynar, nftProvider, snapshotCache, logger)

	serverConfig := &api.ServerConfig{
		Host:              cfg.Server.Host,
		Port:              cfg.Server.Port,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
		RequestsPerSecond: float64(cfg.RateLimit.RequestsPerSecond),
		Burst:             cfg.RateLimit.Burst,
	}

	server := api.NewServer(serverConfig, wrappedService, logger)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	logger.WithFields(map[string]interface{}{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownTimeout := serverConfig.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
