// Command seed populates the database with demo users and friendships.
package main

import (
	"context"
	"flag"
	"log"

	"amity/internal/cache"
	"amity/internal/config"
	"amity/internal/database"
	"amity/internal/observability"
	"amity/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	friendsPerUser := flag.Int("friends", 3, "Approximate friendships per user")
	shouldClean := flag.Bool("clean", true, "Clean collections before seeding")
	dryRun := flag.Bool("dry-run", false, "Generate data without writing to the database")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, ~%d friends each, clean=%v dry-run=%v\n", *numUsers, *friendsPerUser, *shouldClean, *dryRun)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// A dry run never writes, so it does not need a reachable store.
	open := database.Connect
	if *dryRun {
		open = database.Open
	}
	db, err := open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect(context.Background())

	if cfg.CacheEnabled && !*dryRun {
		cache.InitRedis(cfg.RedisURL)
	}

	ctx := observability.WithCorrelationID(context.Background(), observability.GenerateCorrelationID())

	s := seed.NewSeeder(db, seed.Options{
		NumUsers:       *numUsers,
		FriendsPerUser: *friendsPerUser,
		ShouldClean:    *shouldClean,
		DryRun:         *dryRun,
	})

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if _, err := s.SeedMesh(ctx); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✅ Seeding complete")
}
