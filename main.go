package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/nuagehq/mediagate/config"
	"github.com/nuagehq/mediagate/pkg/otel"
	"github.com/nuagehq/mediagate/server"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration path")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "mediagate", version); err != nil {
		slog.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
