package accounts

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/domain/models"
)

type fakeLoader struct {
	acct   *models.Account
	err    error
	lastID primitive.ObjectID
}

func (f *fakeLoader) GetByID(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.acct, nil
}

func TestFetchUser_ResolvesAccountID(t *testing.T) {
	id := primitive.NewObjectID()
	loader := &fakeLoader{acct: &models.Account{
		ID:       id,
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
	}}
	f := &Fetcher{accounts: loader, log: zap.NewNop()}

	// The session carries the account _id written at login; the per-request
	// refresh must resolve that same identifier.
	su := f.FetchUser(context.Background(), id.Hex())
	if su == nil {
		t.Fatal("expected a session user for a live account")
	}
	if loader.lastID != id {
		t.Errorf("looked up %s, want %s", loader.lastID.Hex(), id.Hex())
	}
	if su.ID != id.Hex() {
		t.Errorf("session user ID: got %q, want %q", su.ID, id.Hex())
	}
	if su.Name != "Ada Lovelace" || su.Email != "ada@example.com" {
		t.Errorf("unexpected session user: %+v", su)
	}
}

func TestFetchUser_MissingAccount(t *testing.T) {
	f := &Fetcher{accounts: &fakeLoader{err: ErrNotFound}, log: zap.NewNop()}

	if su := f.FetchUser(context.Background(), primitive.NewObjectID().Hex()); su != nil {
		t.Errorf("expected nil for a deleted account, got %+v", su)
	}
}

func TestFetchUser_LookupError(t *testing.T) {
	f := &Fetcher{accounts: &fakeLoader{err: errors.New("boom")}, log: zap.NewNop()}

	if su := f.FetchUser(context.Background(), primitive.NewObjectID().Hex()); su != nil {
		t.Errorf("expected nil on lookup failure, got %+v", su)
	}
}

func TestFetchUser_MalformedID(t *testing.T) {
	f := &Fetcher{accounts: &fakeLoader{}, log: zap.NewNop()}

	if su := f.FetchUser(context.Background(), "not-a-hex-id"); su != nil {
		t.Errorf("expected nil for a malformed id, got %+v", su)
	}
}
