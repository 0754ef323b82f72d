package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/xaenox/astro-chat/internal/console"
	"github.com/xaenox/astro-chat/internal/overlay"
	"github.com/xaenox/astro-chat/internal/responder"
	"github.com/xaenox/astro-chat/internal/storage"
	"github.com/xaenox/astro-chat/internal/thread"
	"github.com/xaenox/astro-chat/pkg/config"
	"github.com/xaenox/astro-chat/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootstrap := logging.Fallback(zap.NewProduction())
		bootstrap.Fatal("Failed to load config", zap.Error(err), zap.String("path", *configPath))
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize storage
	store := storage.NewMemoryStorage()
	defer store.Close()

	// Initialize responder
	var resp responder.Responder = responder.NewCannedResponder()
	if cfg.Reply.Responder == config.ResponderOpenAI {
		logger.Info("Using OpenAI responder", zap.String("model", cfg.OpenAI.Model))
		resp = responder.NewGPTResponder(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			resp,
			logger,
		)
	}

	ctrl := thread.New(store, resp, cfg.Reply.Delay, logger)
	ov := overlay.New(ctrl, overlay.Size{Width: cfg.Screen.Width, Height: cfg.Screen.Height}, logger)
	con := console.New(store, ctrl, ov, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := con.Run(ctx, os.Stdin); err != nil {
		logger.Fatal("Console error", zap.Error(err))
	}
}
