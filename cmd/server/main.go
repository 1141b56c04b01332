package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scoutclear/scout/internal/brand"
	"github.com/scoutclear/scout/internal/config"
	"github.com/scoutclear/scout/internal/logging"
	"github.com/scoutclear/scout/internal/mail"
	"github.com/scoutclear/scout/internal/server"
	"github.com/scoutclear/scout/internal/telemetry"
	"github.com/scoutclear/scout/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger configuration
	logConfig := logging.DefaultConfig(cfg.LogFile)
	logConfig.Level = cfg.LogLevel
	logConfig.LogRequests = cfg.LogRequests
	if err := logConfig.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging configuration: %v\n", err)
		os.Exit(1)
	}

	// Configure and get logger
	logging.Configure(logConfig)
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server %s in %s mode", version.GetVersionString(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, "scout-api", version.Version)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to flush traces: %v", err)
		}
	}()

	b, err := brand.Load(cfg.BrandFile)
	if err != nil {
		logger.Error("Failed to load brand: %v", err)
		os.Exit(1)
	}

	sender, err := mail.New(cfg.Mail, logger)
	if err != nil {
		logger.Error("Failed to create mail sender: %v", err)
		os.Exit(1)
	}
	if telemetry.Enabled(cfg.OTLPEndpoint) {
		sender = mail.NewTracedSender(sender)
	}
	logger.Info("Using mail provider %s", sender.Name())

	// Create and start server
	srv, err := server.NewServer(cfg, logger, server.Deps{
		Sender: sender,
		Brand:  b,
	})
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}

	// Initialize server
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
