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

	fmt.Println("📋 Listing all orders:")

	orders, err := svc.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list orders: %v\n", err)
		os.Exit(1)
	}

	for i, order := range orders {
		fmt.Printf("Order #%d:\n", i+1)
		fmt.Printf("  ID: %s\n", order.ID.Hex())
		fmt.Printf("  Order ID: %s\n", order.OrderID)
		fmt.Printf("  Date/Time: %s\n", order.DateTime)
		fmt.Printf("  Gross Sale: %s\n", order.GrossSale)
		fmt.Printf("  Net Sales: %s\n", order.NetSales)
		if !order.DarazCommission.Empty() {
			fmt.Printf("  Daraz Commission: %s\n", order.DarazCommission)
		}
		if !order.Profit.Empty() {
			fmt.Printf("  Profit: %s\n", order.Profit)
		}
		if !order.Loss.Empty() {
			fmt.Printf("  Loss: %s\n", order.Loss)
		}
		fmt.Printf("  Payment: %s\n", order.Payment)
		fmt.Printf("  Products: %s\n", service.ProductsCell(order.Products))
		fmt.Printf("  Created: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println()
	}

	if len(orders) == 0 {
		fmt.Println("❌ No orders found.")
		fmt.Println("\nAdd one with: go run cmd/add-order/main.go -order DRZ-1001 -gross 1000 -net 800 -product \"Charger:100:5\"")
	} else {
		summary := svc.Summarize(orders)
		fmt.Printf("✅ Found %d order(s) | gross %s | net %s | commission %s | profit %s | loss %s\n",
			summary.Orders, summary.GrossSale, summary.NetSales,
			summary.DarazCommission, summary.Profit, summary.Loss)
	}
}
