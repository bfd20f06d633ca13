package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"product-insights/internal/config"
	"product-insights/internal/database"
)

// check_db connects with the service's own configuration, ensures the schema
// and prints the row count of each table.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	db, err := database.NewGorm(pool, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to create ORM handle: %v\n", err)
		os.Exit(1)
	}

	if err := database.EnsureSchema(ctx, db, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to ensure schema: %v\n", err)
		os.Exit(1)
	}

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	for _, table := range []string{"products", "users"} {
		var count int64
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			fmt.Fprintf(os.Stderr, "Count on %s failed: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("  %-10s %d rows\n", table, count)
	}
}
