// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a recipe shared to the community feed. ImageID is the storage
// key of the photo in the blob bucket; resolving it to a URL happens at
// render time and is best effort.
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	AuthorName string             `bson:"author_name" json:"author_name"`
	ImageID    string             `bson:"image_id" json:"image_id"`
	Message    string             `bson:"message" json:"message"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
