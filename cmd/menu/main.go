package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/catalog"
	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/money"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: go run cmd/menu/main.go [item-id]")
		fmt.Println("Example: go run cmd/menu/main.go 2")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat := catalog.Default()
	symbol := cfg.Currency.Symbol

	if len(os.Args) == 1 {
		logger.Debug("Printing menu", zap.Int("items", cat.Len()))
		for _, item := range cat.Items() {
			printItem(item, symbol)
		}
		return
	}

	id, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid item id %q\n", os.Args[1])
		os.Exit(1)
	}

	item, ok := cat.Item(id)
	if !ok {
		fmt.Printf("❌ Item %d is not on the menu.\n", id)
		fmt.Printf("\nRun without arguments to list all %d items.\n", cat.Len())
		os.Exit(1)
	}

	printItem(item, symbol)
	fmt.Printf("  Image: %s\n", item.Image)
}

func printItem(item domain.CatalogItem, symbol string) {
	fmt.Printf("%d. %s (%s) - %s\n", item.ID, item.Name, item.Size, money.Format(item.Price, symbol))
	fmt.Printf("   %s\n", item.Description)
}
