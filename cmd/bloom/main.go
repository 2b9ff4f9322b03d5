// Package main provides the entry point for the bloom CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mayobojhosue-coder/app-bloom/cmd/bloom/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
