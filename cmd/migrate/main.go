// Command migrate bootstraps the document-store indexes for the backend.
package main

import (
	"context"
	"fmt"
	"log"

	"amity/internal/config"
	"amity/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.Disconnect(context.Background())

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	log.Println("indexes ensured")
	return nil
}
