package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/artem13815/smartparking/pkg/chat"
	"github.com/artem13815/smartparking/pkg/config"
	"github.com/artem13815/smartparking/pkg/llm/openai"
	"github.com/artem13815/smartparking/pkg/logging"
)

func main() {
	cfg, err := config.LoadChat()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "OPENAI_API_KEY fehlt: setze die Variable oder trage sie in .env ein")
			os.Exit(1)
		}
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := openai.New(cfg.APIKey, cfg.BaseURL, cfg.Model)
	if err != nil {
		logger.Fatal("init completion client", zap.Error(err))
	}
	logger.Debug("chat client ready", zap.Stringer("config", cfg))

	session := chat.NewSession(client, os.Stdin, os.Stdout, chat.WithLogger(logger))
	if err := session.Run(context.Background()); err != nil {
		logger.Error("chat session ended", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
