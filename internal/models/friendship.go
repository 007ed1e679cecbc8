// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendshipCollection is the MongoDB collection holding friendship documents.
const FriendshipCollection = "friendships"

// Friendship represents a mutual connection between two users.
//
// The relation is symmetric and should exist at most once per unordered pair
// of users. Neither property is enforced here: mutual consent is established
// by the caller before a record is created, and the store carries no unique
// index on the pair, so concurrent creates for the same pair can produce
// duplicate documents.
type Friendship struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserOneID   primitive.ObjectID `bson:"user_one_id" json:"user_one_id"`
	UserTwoID   primitive.ObjectID `bson:"user_two_id" json:"user_two_id"`
	DateCreated time.Time          `bson:"date_created" json:"date_created"`

	// Populated relationships, never persisted.
	UserOne *User `bson:"-" json:"user_one,omitempty"`
	UserTwo *User `bson:"-" json:"user_two,omitempty"`
}
