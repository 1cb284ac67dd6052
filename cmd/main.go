package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"feedback_widget/internal/application"
	"feedback_widget/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.NewLogger(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_NO_COLOR") != "")
	slog.SetDefault(log)

	if err := application.Run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
