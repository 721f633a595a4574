package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/glowlab/skinflow/internal/buildinfo"
	"github.com/glowlab/skinflow/internal/catalog"
	"github.com/glowlab/skinflow/internal/cli"
	"github.com/glowlab/skinflow/internal/config"
	"github.com/glowlab/skinflow/internal/dashboard"
	"github.com/glowlab/skinflow/internal/logging"
	"github.com/glowlab/skinflow/internal/registry"
	"github.com/glowlab/skinflow/internal/scanlog"
	"github.com/glowlab/skinflow/internal/session"
	"github.com/glowlab/skinflow/internal/storage"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	reg := registry.New(db)
	sessions := session.NewStore(db, reg, logger, cfg.DemoEmail, cfg.DemoName)
	history := scanlog.New(sessions)
	cat := catalog.New()
	dash := dashboard.NewBuilder(sessions, history, cat)

	app := cli.NewApp(cfg, sessions, history, cat, dash, logger)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

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
