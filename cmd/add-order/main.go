package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/config"
	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/repository/mongodb"
	"github.com/darazdesk/ledgerapi/internal/service"
	"github.com/darazdesk/ledgerapi/internal/tracker"
)

type productFlags []string

func (p *productFlags) String() string { return strings.Join(*p, ", ") }
func (p *productFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var (
		dateTime = flag.String("date", "", "order date/time, free text")
		orderID  = flag.String("order", "", "order id label, e.g. DRZ-1001")
		gross    = flag.String("gross", "", "gross sale amount")
		net      = flag.String("net", "", "net sales amount")
		payment  = flag.String("payment", "", "payment info, free text")
		products productFlags
	)
	flag.Var(&products, "product", "product row as name:purchasingPrice:unitsSold[:list] (repeatable)")
	flag.Parse()

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
	tr := tracker.New(svc, logger)

	// Drive the editor: open a blank draft, fill it, submit
	tr.OpenNew()
	draft := tr.Draft()
	draft.DateTime = *dateTime
	draft.OrderID = *orderID
	draft.GrossSale = domain.Numeric(*gross)
	draft.NetSales = domain.Numeric(*net)
	draft.Payment = *payment

	for i, spec := range products {
		if i > 0 {
			draft.Products = append(draft.Products, domain.Product{})
		}
		parts := strings.SplitN(spec, ":", 4)
		row := domain.Product{Name: parts[0]}
		if len(parts) > 1 {
			row.PurchasingPrice = domain.Numeric(parts[1])
		}
		if len(parts) > 2 {
			row.UnitsSold = domain.Numeric(parts[2])
		}
		if len(parts) > 3 {
			row.List = parts[3]
		}
		draft.Products[i] = row
	}
	tr.SetDraft(draft)

	normalized := tr.Draft()
	if err := tr.Submit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to add order: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Order added: %s\n", *orderID)
	if !normalized.DarazCommission.Empty() {
		fmt.Printf("  Daraz Commission: %s\n", normalized.DarazCommission)
	}
	if !normalized.Profit.Empty() {
		fmt.Printf("  Profit: %s\n", normalized.Profit)
	}
	if !normalized.Loss.Empty() {
		fmt.Printf("  Loss: %s\n", normalized.Loss)
	}
}
