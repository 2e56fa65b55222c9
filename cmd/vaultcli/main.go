package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mkarpovs/accountvault/internal/cli"
	"github.com/mkarpovs/accountvault/internal/config"
	"github.com/mkarpovs/accountvault/internal/logging"
)

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {

	cfg := config.LoadConfig()

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})
	logger := logging.NewSlogLogger(slog.New(h))

	app, cleanup, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	app.Run(context.Background())
}
