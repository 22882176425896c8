// internal/app/store/posts/poststore.go

// Package posts manages recipe posts shared to the community feed.
package posts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecochef/ecochef/internal/domain/models"
)

var ErrMissingFields = errors.New("posts: missing required fields")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// Create inserts a post document. The image referenced by ImageID must
// already be in the blob store.
func (s *Store) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	if post.UserID.IsZero() || post.ImageID == "" || post.Message == "" {
		return nil, ErrMissingFields
	}

	post.CreatedAt = time.Now().UTC()
	res, err := s.c.InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("posts: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

// ListAll returns every post, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("posts: list: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("posts: decode list: %w", err)
	}
	return out, nil
}
