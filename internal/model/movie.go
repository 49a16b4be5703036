package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre is embedded in a movie document and describes the movie's genre.
type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// Director is embedded in a movie document.  Birth and Death are kept as
// plain date strings because the source data does not guarantee full
// timestamps (living directors have no death date).
type Director struct {
	Name  string `bson:"name" json:"name"`
	Bio   string `bson:"bio" json:"bio"`
	Birth string `bson:"birth,omitempty" json:"birth,omitempty"`
	Death string `bson:"death,omitempty" json:"death,omitempty"`
}

// Movie represents a catalog document in the `movies` collection.  Genre and
// Director are embedded rather than referenced so a single lookup returns
// everything a client needs to render a detail page.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Genre       Genre              `bson:"genre" json:"genre"`
	Director    Director           `bson:"director" json:"director"`
	ImagePath   string             `bson:"image_path,omitempty" json:"imagePath,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
}
