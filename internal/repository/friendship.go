// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"amity/internal/models"
	"amity/internal/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FriendshipRepository defines collection-level operations on friendship documents.
//
// Every method is a direct pass-through to one MongoDB query. The repository
// performs no duplicate checks and no cross-document coordination.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Friendship, error)
	List(ctx context.Context) ([]models.Friendship, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Friendship, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteAllByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// friendshipRepository implements FriendshipRepository
type friendshipRepository struct {
	col *mongo.Collection
	log *observability.RepoLogger
}

// NewFriendshipRepository returns a new FriendshipRepository backed by db.
func NewFriendshipRepository(db *mongo.Database) FriendshipRepository {
	return &friendshipRepository{
		col: db.Collection(models.FriendshipCollection),
		log: observability.NewRepoLogger(models.FriendshipCollection),
	}
}

// eitherParty matches documents where userID appears on either side of the
// relation. Listing and cascade deletion share this filter so the two can
// never disagree about which documents belong to a user.
func eitherParty(userID primitive.ObjectID) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"user_one_id": userID},
		bson.M{"user_two_id": userID},
	}}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if friendship.DateCreated.IsZero() {
		friendship.DateCreated = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, friendship)
	if err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		friendship.ID = oid
	}

	r.log.LogCreate(ctx, map[string]interface{}{
		"id":          friendship.ID.Hex(),
		"user_one_id": friendship.UserOneID.Hex(),
		"user_two_id": friendship.UserTwoID.Hex(),
	})
	return nil
}

func (r *friendshipRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&friendship)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil // No friendship exists
	}
	if err != nil {
		r.log.LogError(ctx, err, "read")
		return nil, models.NewInternalError(err)
	}

	r.log.LogRead(ctx, map[string]interface{}{"id": id.Hex()})
	return &friendship, nil
}

func (r *friendshipRepository) List(ctx context.Context) ([]models.Friendship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}

	r.log.LogRead(ctx, map[string]interface{}{"count": len(friendships)})
	return friendships, nil
}

func (r *friendshipRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Friendship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})
	cursor, err := r.col.Find(ctx, eitherParty(userID), opts)
	if err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		r.log.LogError(ctx, err, "list")
		return nil, models.NewInternalError(err)
	}

	r.log.LogRead(ctx, map[string]interface{}{
		"user_id": userID.Hex(),
		"count":   len(friendships),
	})
	return friendships, nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.LogError(ctx, err, "delete")
		return false, models.NewInternalError(err)
	}

	r.log.LogDelete(ctx, map[string]interface{}{
		"id":      id.Hex(),
		"deleted": res.DeletedCount,
	})
	return res.DeletedCount > 0, nil
}

func (r *friendshipRepository) DeleteAllByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	// One conditional delete over both roles, so a crash mid-cascade cannot
	// leave the user half-removed.
	res, err := r.col.DeleteMany(ctx, eitherParty(userID))
	if err != nil {
		r.log.LogError(ctx, err, "delete")
		return 0, models.NewInternalError(err)
	}

	r.log.LogDelete(ctx, map[string]interface{}{
		"user_id": userID.Hex(),
		"deleted": res.DeletedCount,
	})
	return res.DeletedCount, nil
}
