package repository

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/utils"
)

// UserRepo persists accounts in the `users` collection.  Passwords cross
// this boundary once, in plaintext, and are stored only as bcrypt hashes.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepo builds the repository and ensures the unique username index.
// Index creation is idempotent; a failure is logged and not fatal because
// the server can still run against an already-indexed collection.
func NewUserRepo(db *mongo.Database) *UserRepo {
	col := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("users: create username index: %v", err)
	}
	return &UserRepo{col: col}
}

// NewUser carries the fields a client supplies at registration or in a
// profile update.  Blank fields in an update mean "leave unchanged".
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
}

// Create registers an account with an empty favorites list and returns the
// stored document.
func (r *UserRepo) Create(ctx context.Context, nu NewUser, cost int) (*model.User, error) {
	hash, err := utils.HashPassword(nu.Password, cost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &model.User{
		ID:             primitive.NewObjectID(),
		Username:       strings.TrimSpace(nu.Username),
		PasswordHash:   hash,
		Email:          strings.TrimSpace(nu.Email),
		Birthday:       nu.Birthday,
		FavoriteMovies: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return u, nil
}

// FindByUsername fetches a user by username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID fetches a user by the hex form of its ObjectID.  An unparseable
// id behaves like an absent user.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var u model.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update applies the non-blank fields of nu to the user addressed by
// username and returns the updated document.  A new password is rehashed
// before it is stored.
func (r *UserRepo) Update(ctx context.Context, username string, nu NewUser, cost int) (*model.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if v := strings.TrimSpace(nu.Username); v != "" {
		set["username"] = v
	}
	if nu.Password != "" {
		hash, err := utils.HashPassword(nu.Password, cost)
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}
	if v := strings.TrimSpace(nu.Email); v != "" {
		set["email"] = v
	}
	if nu.Birthday != "" {
		set["birthday"] = nu.Birthday
	}

	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"username": username},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	var u model.User
	if err := res.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes the account addressed by username.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFavorite appends a movie title to the user's favorites.  $addToSet
// keeps the list duplicate-free even under concurrent requests.
func (r *UserRepo) AddFavorite(ctx context.Context, username, title string) (*model.User, error) {
	return r.favoriteUpdate(ctx, username, bson.M{"$addToSet": bson.M{"favorite_movies": title}})
}

// RemoveFavorite removes a movie title from the user's favorites.  Removing
// a title that is not on the list is not an error.
func (r *UserRepo) RemoveFavorite(ctx context.Context, username, title string) (*model.User, error) {
	return r.favoriteUpdate(ctx, username, bson.M{"$pull": bson.M{"favorite_movies": title}})
}

func (r *UserRepo) favoriteUpdate(ctx context.Context, username string, update bson.M) (*model.User, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"username": username},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var u model.User
	if err := res.Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
