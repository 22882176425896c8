// internal/app/store/groceries/grocerystore.go

// Package groceries manages per-member grocery items. Every read is scoped
// to an owner; there is no cross-member listing, and items are never
// updated or deleted once added.
package groceries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecochef/ecochef/internal/app/system/normalize"
	"github.com/ecochef/ecochef/internal/domain/models"
)

var (
	ErrMissingName     = errors.New("groceries: item name is required")
	ErrInvalidQuantity = errors.New("groceries: quantity must be at least 1")
	ErrMissingOwner    = errors.New("groceries: owner is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("grocery_items")}
}

// Create validates and inserts one item for the owner. ExpiryDate may be
// nil for non-perishables and is stored as absent rather than a zero date.
func (s *Store) Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error) {
	item.Name = normalize.Name(item.Name)
	if item.Name == "" {
		return nil, ErrMissingName
	}
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if item.UserID.IsZero() {
		return nil, ErrMissingOwner
	}

	item.NameCI = text.Fold(item.Name)
	item.CreatedAt = time.Now().UTC()

	res, err := s.c.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("groceries: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return item, nil
}

// ListForUser returns the owner's items, newest purchase first. Items
// belonging to other members never appear in the result.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.GroceryItem, error) {
	if userID.IsZero() {
		return nil, ErrMissingOwner
	}

	opts := options.Find().SetSort(bson.D{{Key: "purchase_date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("groceries: list for user: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.GroceryItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("groceries: decode list: %w", err)
	}
	return out, nil
}
