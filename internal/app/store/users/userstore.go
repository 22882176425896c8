// internal/app/store/users/userstore.go

// Package users manages member profiles: display name, email, and the
// points balance shown on the leaderboard. A profile is created during
// signup after the login identity; the two are linked by email only.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecochef/ecochef/internal/app/system/normalize"
	"github.com/ecochef/ecochef/internal/domain/models"
)

/*───────────────────────────────────────────────────────────────────────────
  errors
───────────────────────────────────────────────────────────────────────────*/

var (
	ErrDuplicateEmail = errors.New("users: email already has a profile")
	ErrMissingFields  = errors.New("users: missing required fields")
	ErrNotFound       = errors.New("users: profile not found")
)

// PostPoints is awarded each time a member publishes a post.
const PostPoints = 10

/*───────────────────────────────────────────────────────────────────────────
  store
───────────────────────────────────────────────────────────────────────────*/

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new profile with zero points.
func (s *Store) Create(ctx context.Context, fullName, email string) (*models.User, error) {
	fullName = normalize.Name(fullName)
	email = normalize.Email(email)
	if fullName == "" || email == "" {
		return nil, ErrMissingFields
	}

	now := time.Now().UTC()
	u := &models.User{
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Points:     0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("users: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

// GetByEmail returns the profile for a normalized email, or ErrNotFound.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: get by email: %w", err)
	}
	return &u, nil
}

// ListAll returns every profile. The leaderboard orders the result itself,
// so no sort is applied here.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("users: decode list: %w", err)
	}
	return out, nil
}

// AwardPostPoints looks the profile up by email, reads its current balance,
// and writes balance+10 back. The read and write are separate operations,
// so two concurrent awards against the same profile can settle as a single
// increment; publishing is rare enough per user that this has not been
// worth a transaction.
func (s *Store) AwardPostPoints(ctx context.Context, email string) (int, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	newTotal := u.Points + PostPoints
	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{"points": newTotal, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, fmt.Errorf("users: award points: %w", err)
	}
	return newTotal, nil
}
