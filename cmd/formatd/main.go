package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hexforge/u256strings/config"
	"github.com/hexforge/u256strings/pkg/logger"
	"github.com/hexforge/u256strings/pkg/server"
	"github.com/hexforge/u256strings/pkg/tokenuri"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logger.Development)

	builder := tokenuri.NewBuilder(cfg.Formatter.URITemplate, cfg.Formatter.HexIDDigits)
	srv := server.NewServer(cfg.Server.Addr(), builder, logger.Sugar)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown gracefully
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Sugar.Info("Received shutdown signal, stopping service...")
		cancel()
	}()

	if err := srv.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Formatting service failed: %v", err)
	}
}
