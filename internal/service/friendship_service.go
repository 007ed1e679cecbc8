// Package service composes repositories into the operations exposed to callers.
package service

import (
	"context"
	"time"

	"amity/internal/models"
	"amity/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendshipService exposes the friendship data-access operations consumed
// by the application's route handlers. Mutual consent, duplicate prevention
// and authorization all happen upstream; every method here maps onto a
// single store interaction, plus username resolution where needed.
type FriendshipService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

// NewFriendshipService returns a new FriendshipService.
func NewFriendshipService(friendshipRepo repository.FriendshipRepository, userRepo repository.UserRepository) *FriendshipService {
	return &FriendshipService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

// AddFriendship persists a new friendship between the two users and returns
// it with both parties resolved to full user data. There is no duplicate
// check: creating a second record for the same pair succeeds.
func (s *FriendshipService) AddFriendship(ctx context.Context, userOneID, userTwoID primitive.ObjectID) (*models.Friendship, error) {
	friendship := &models.Friendship{
		UserOneID:   userOneID,
		UserTwoID:   userTwoID,
		DateCreated: time.Now().UTC(),
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	userOne, err := s.userRepo.GetByID(ctx, friendship.UserOneID)
	if err != nil {
		return nil, err
	}
	userTwo, err := s.userRepo.GetByID(ctx, friendship.UserTwoID)
	if err != nil {
		return nil, err
	}
	friendship.UserOne = userOne
	friendship.UserTwo = userTwo

	return friendship, nil
}

// GetFriendship returns the friendship with the given id, or (nil, nil)
// when no such record exists.
func (s *FriendshipService) GetFriendship(ctx context.Context, id primitive.ObjectID) (*models.Friendship, error) {
	return s.friendshipRepo.GetByID(ctx, id)
}

// ListFriendships returns every friendship record, newest first.
func (s *FriendshipService) ListFriendships(ctx context.Context) ([]models.Friendship, error) {
	return s.friendshipRepo.List(ctx)
}

// ListFriendshipsOfUser resolves the username and returns every friendship
// where that user appears as either party. A failed resolution propagates
// unchanged to the caller.
func (s *FriendshipService) ListFriendshipsOfUser(ctx context.Context, username string) ([]models.Friendship, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.friendshipRepo.ListByUserID(ctx, user.ID)
}

// RemoveFriendship deletes the friendship with the given id and reports
// whether a record was actually removed.
func (s *FriendshipService) RemoveFriendship(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return s.friendshipRepo.Delete(ctx, id)
}

// RemoveAllFriendshipsOfUser resolves the username and deletes every
// friendship where that user appears as either party. Used when a user
// account is removed.
func (s *FriendshipService) RemoveAllFriendshipsOfUser(ctx context.Context, username string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	_, err = s.friendshipRepo.DeleteAllByUserID(ctx, user.ID)
	return err
}
