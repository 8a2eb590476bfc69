package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/duckmesh/insightmesh/internal/app"
	"github.com/duckmesh/insightmesh/internal/config"
	"github.com/duckmesh/insightmesh/internal/mcpserver"
	"github.com/duckmesh/insightmesh/internal/observability"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv("insightmesh-mcp")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// stdout carries the MCP protocol.
	logger := observability.NewLogger(cfg, os.Stderr)
	runtime, err := app.Build(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize pipeline", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = runtime.Close() }()

	s := mcpserver.NewServer(mcpserver.Dependencies{
		Sessions: runtime.Orchestrator,
		Datasets: runtime.Datasets,
		Advisor:  runtime.Advisor,
		Logger:   logger,
	})

	logger.Info("serving mcp over stdio", slog.String("server", mcpserver.ServerName))
	if err := server.ServeStdio(s); err != nil {
		logger.Error("mcp server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
