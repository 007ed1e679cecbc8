package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCollection is the MongoDB collection holding user documents.
const UserCollection = "users"

// User represents a user account. The user subsystem itself lives outside
// this module; this is the minimal document shape the friendship layer needs
// to resolve usernames and populate friendship parties.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Bio       string             `bson:"bio,omitempty" json:"bio"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
