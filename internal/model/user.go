package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document in the `users` collection.  The
// password is stored only as a bcrypt hash and is excluded from JSON
// serialization so it can never leak into a response or a token payload.
//
// Fields:
//  ID             – store-assigned ObjectID of the user.
//  Username       – unique, human-chosen name; also the path-addressing key
//                   for user-scoped endpoints (/users/:username/...).
//  PasswordHash   – bcrypt hash of the password (users.password).
//  Email          – contact email address.
//  Birthday       – optional date of birth.
//  FavoriteMovies – titles of movies the user marked as favorites.
//  CreatedAt      – timestamp of registration.
//  UpdatedAt      – timestamp of last profile update.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	PasswordHash   string             `bson:"password" json:"-"`
	Email          string             `bson:"email" json:"email"`
	Birthday       string             `bson:"birthday,omitempty" json:"birthday,omitempty"`
	FavoriteMovies []string           `bson:"favorite_movies" json:"favoriteMovies"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
