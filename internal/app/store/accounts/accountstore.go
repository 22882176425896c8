// internal/app/store/accounts/accountstore.go

// Package accounts manages login identities. An account holds the email and
// password hash used to sign in; the member profile (points, display data)
// lives in the users collection and is created separately during signup.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecochef/ecochef/internal/app/system/normalize"
	"github.com/ecochef/ecochef/internal/domain/models"
)

/*───────────────────────────────────────────────────────────────────────────
  errors
───────────────────────────────────────────────────────────────────────────*/

var (
	ErrDuplicateEmail     = errors.New("accounts: email already registered")
	ErrInvalidCredentials = errors.New("accounts: invalid email or password")
	ErrMissingFields      = errors.New("accounts: missing required fields")
	ErrNotFound           = errors.New("accounts: account not found")
)

/*───────────────────────────────────────────────────────────────────────────
  store
───────────────────────────────────────────────────────────────────────────*/

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("accounts")}
}

// Create registers a new login identity. The email is normalized before
// insert; a unique index on email turns races into ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, email, password, fullName string) (*models.Account, error) {
	email = normalize.Email(email)
	fullName = normalize.Name(fullName)
	if email == "" || password == "" || fullName == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("accounts: hash password: %w", err)
	}

	acct := &models.Account{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := s.c.InsertOne(ctx, acct)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("accounts: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		acct.ID = oid
	}
	return acct, nil
}

// Authenticate checks the password for the given email and returns the
// account on success. Unknown email and wrong password both map to
// ErrInvalidCredentials so the login form cannot probe for registered
// addresses.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	email = normalize.Email(email)

	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&acct)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("accounts: lookup %s: %w", email, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &acct, nil
}

// GetByID returns the account for an _id, or ErrNotFound. The session
// refresh on every request goes through here.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"_id": id}, touchProjection).Decode(&acct)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("accounts: get by id: %w", err)
	}
	return &acct, nil
}

// touchProjection limits session-refresh reads to the fields the cookie
// carries.
var touchProjection = options.FindOne().SetProjection(bson.M{
	"full_name": 1,
	"email":     1,
})
