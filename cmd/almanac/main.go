package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/almanac/adapter/cli"
	"github.com/felixgeelhaar/almanac/internal/calendar/application"
	"github.com/felixgeelhaar/almanac/internal/calendar/builtin"
	"github.com/felixgeelhaar/almanac/internal/calendar/infrastructure/ics"
	"github.com/felixgeelhaar/almanac/pkg/config"
	"github.com/felixgeelhaar/almanac/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		// In development without .env, use defaults
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	cli.SetLogger(logger)

	engine := application.NewEngine(application.Options{
		Config: cfg,
		Logger: logger,
	})
	builtin.RegisterAll(engine.ItemTypes())

	cli.SetApp(&cli.App{
		Engine:   engine,
		Importer: ics.NewImporter(logger),
		Config:   cfg,
	})

	cli.Execute(ctx)
}
