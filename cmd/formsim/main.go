package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/config"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/tracing"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/logging"
)

func main() {
	scriptPath := flag.String("script", "", "path to the JSON script (stdin if empty)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	tracer, shutdown, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		slog.Error("Failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Warn("Tracer shutdown failed", "error", err)
		}
	}()

	var in io.Reader = os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			slog.Error("Failed to open script", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := Replay(ctx, cfg, tracer, in, os.Stdout); err != nil {
		slog.Error("Replay failed", "error", err)
		os.Exit(1)
	}
}
