package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/config"
	"github.com/darazdesk/ledgerapi/internal/repository/mongodb"
	"github.com/darazdesk/ledgerapi/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: delete-order <order-id>")
		os.Exit(1)
	}
	id := os.Args[1]

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

	// Explicit confirmation before anything is sent to the store
	fmt.Printf("Delete order %s? This cannot be undone. [y/N]: ", id)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	confirmed := strings.EqualFold(strings.TrimSpace(answer), "y")

	if err := svc.Delete(ctx, id, confirmed); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Order %s deleted\n", id)
}
