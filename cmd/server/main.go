package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	// internal imports
	"github.com/artem13815/smartparking/api/http"
	"github.com/artem13815/smartparking/api/http/handlers"
	"github.com/artem13815/smartparking/pkg/config"
	"github.com/artem13815/smartparking/pkg/logging"
	"github.com/artem13815/smartparking/pkg/owner"
	"github.com/artem13815/smartparking/pkg/repository/memory"
)

func main() {
	// Load configuration from env/.env
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Wire dependencies
	ownerRepo, err := memory.NewOwnerRepository(owner.Fixture)
	if err != nil {
		logger.Fatal("init owner repo", zap.Error(err))
	}
	ownersHandler := handlers.NewOwnersHandler(owner.NewService(ownerRepo))

	app := http.NewApp(logger)
	http.Register(app, handlers.NewRootHandler(), ownersHandler)

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	logger.Info("HTTP server listening",
		zap.String("app", http.AppName),
		zap.String("version", http.AppVersion),
		zap.String("port", cfg.Port),
	)
	if err := http.Serve(ctx, app, ln, cfg.ShutdownTimeout); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
