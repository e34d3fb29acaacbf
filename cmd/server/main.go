package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mhoo999/mail-maker/internal/config"
	"github.com/mhoo999/mail-maker/internal/server"
	"github.com/mhoo999/mail-maker/internal/storage/providers"
	httptransport "github.com/mhoo999/mail-maker/internal/transport/http"
)

const envLocal = "local"

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(setupLogger(cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	allProviders, err := providers.New(ctx, cfg.Storage)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "err", err)
		os.Exit(1)
	}
	defer allProviders.Close()

	router := httptransport.Router(allProviders, cfg)

	slog.Info("starting mail maker", "env", cfg.Env, "storage", cfg.Storage.Driver, "auth", cfg.Auth.Enabled)
	if err := server.Start(ctx, cfg.Server, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	if env == envLocal {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
