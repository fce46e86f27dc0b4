package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"basegraph.app/blueprint/common/id"
	"basegraph.app/blueprint/common/logger"
	"basegraph.app/blueprint/core/config"
	"basegraph.app/blueprint/internal/mcpserver"
	"basegraph.app/blueprint/internal/service"
	"basegraph.app/blueprint/internal/store"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("blueprint-mcp %s\n", mcpserver.Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blueprint-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeMCP)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries the protocol
	logger.SetupWriter(cfg, os.Stderr)

	if err := id.Init(3); err != nil {
		return fmt.Errorf("initializing id generator: %w", err)
	}

	stores, closeStores, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening stores: %w", err)
	}
	defer closeStores()

	s := mcpserver.New(service.NewServices(stores))

	slog.InfoContext(ctx, "blueprint mcp server ready", "store", cfg.Store.Backend)
	return server.ServeStdio(s)
}
