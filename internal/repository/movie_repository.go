package repository

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/efriedrich/movie-api/internal/model"
)

// MovieRepo reads the `movies` collection.  The catalog is maintained out of
// band, so this repository is query-only.
type MovieRepo struct {
	col *mongo.Collection
}

// NewMovieRepo builds the repository and ensures the unique title index.
func NewMovieRepo(db *mongo.Database) *MovieRepo {
	col := db.Collection("movies")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("movies: create title index: %v", err)
	}
	return &MovieRepo{col: col}
}

// List returns the whole catalog sorted by title.
func (r *MovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var movies []*model.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByTitle fetches a single movie by its exact title.
func (r *MovieRepo) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var m model.Movie
	if err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GenreByName returns the genre description embedded in any movie of that
// genre.
func (r *MovieRepo) GenreByName(ctx context.Context, name string) (*model.Genre, error) {
	var m model.Movie
	err := r.col.FindOne(ctx,
		bson.M{"genre.name": name},
		options.FindOne().SetProjection(bson.M{"genre": 1})).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m.Genre, nil
}

// DirectorByName returns the director bio embedded in any movie they
// directed.
func (r *MovieRepo) DirectorByName(ctx context.Context, name string) (*model.Director, error) {
	var m model.Movie
	err := r.col.FindOne(ctx,
		bson.M{"director.name": name},
		options.FindOne().SetProjection(bson.M{"director": 1})).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m.Director, nil
}
