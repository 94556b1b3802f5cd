package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/config"
	"github.com/darazdesk/ledgerapi/internal/repository/mongodb"
	"github.com/darazdesk/ledgerapi/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Mongo.URI == "" {
		fmt.Fprintln(os.Stderr, "MONGO_URI is required")
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx := context.Background()

	// Initialize storage
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	repos := mongodb.NewRepositories(client, cfg.Mongo, logger)
	svc := service.NewOrderService(repos, logger)

	orders, err := svc.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list orders: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(service.ExportFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", service.ExportFileName, err)
		os.Exit(1)
	}

	if err := svc.Export(orders, out); err != nil {
		out.Close()
		os.Remove(service.ExportFileName)
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", service.ExportFileName, err)
		os.Exit(1)
	}

	fmt.Printf("✅ Exported %d order(s) to %s\n", len(orders), service.ExportFileName)
}
