package seed

import (
	"context"
	"fmt"
	"log"

	"amity/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeder populates the database with demo users and a friendship mesh.
type Seeder struct {
	db      *mongo.Database
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder bound to the provided database.
func NewSeeder(db *mongo.Database, opts Options) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		opts:    opts,
	}
}

// ClearAll removes every seeded document from the friendship and user collections.
func (s *Seeder) ClearAll(ctx context.Context) error {
	if s.opts.DryRun {
		log.Println("[dry-run] ClearAll: skipped")
		return nil
	}
	for _, col := range []string{models.FriendshipCollection, models.UserCollection} {
		if _, err := s.db.Collection(col).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", col, err)
		}
	}
	log.Println("Cleared friendship and user collections")
	return nil
}

// SeedMesh creates NumUsers users and links each to roughly FriendsPerUser
// others. Pairs are only linked once; the mesh is deliberately uneven so
// listings look like real data.
func (s *Seeder) SeedMesh(ctx context.Context) ([]*models.User, error) {
	numUsers := s.opts.NumUsers
	if numUsers < 2 {
		numUsers = 2
	}
	friendsPerUser := s.opts.FriendsPerUser
	if friendsPerUser <= 0 {
		friendsPerUser = 3
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
	}

	linked := make(map[[2]int]bool)
	created := 0
	for i := range users {
		for n := 0; n < friendsPerUser; n++ {
			j := s.factory.rng.Intn(len(users))
			if j == i {
				continue
			}
			key := [2]int{min(i, j), max(i, j)}
			if linked[key] {
				continue
			}
			linked[key] = true

			if _, err := s.factory.CreateFriendship(ctx, users[i], users[j]); err != nil {
				return nil, fmt.Errorf("create friendship %d<->%d: %w", i, j, err)
			}
			created++
		}
	}

	log.Printf("Seeded %d users and %d friendships", len(users), created)
	return users, nil
}
