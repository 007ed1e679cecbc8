// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"amity/internal/models"
	"amity/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	FriendsPerUser int
	ShouldClean    bool
	DryRun         bool
	// MaxDays bounds how far back generated date_created values spread.
	MaxDays int
}

// Factory builds domain entities and persists them through the repositories.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	users       repository.UserRepository
	friendships repository.FriendshipRepository
	opts        Options
	rng         *rand.Rand
}

// NewFactory creates a new Factory bound to the provided database.
func NewFactory(db *mongo.Database, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users:       repository.NewUserRepository(db),
		friendships: repository.NewFriendshipRepository(db),
		opts:        opts,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(gofakeit.Password(true, true, true, true, false, 16)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hash),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		user.ID = primitive.NewObjectID()
		log.Printf("[dry-run] CreateUser: %s (no DB write)", user.Username)
		return user, nil
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateFriendship constructs and persists a friendship between two users
// with a realistic date_created spread.
func (f *Factory) CreateFriendship(ctx context.Context, userOne, userTwo *models.User) (*models.Friendship, error) {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)

	friendship := &models.Friendship{
		UserOneID:   userOne.ID,
		UserTwoID:   userTwo.ID,
		DateCreated: time.Now().UTC().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute),
	}

	if f.opts.DryRun {
		friendship.ID = primitive.NewObjectID()
		log.Printf("[dry-run] CreateFriendship: %s <-> %s (no DB write)", userOne.Username, userTwo.Username)
		return friendship, nil
	}

	if err := f.friendships.Create(ctx, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}
