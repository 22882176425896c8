// internal/app/store/accounts/fetcher.go

package accounts

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/domain/models"
)

// accountLoader is the slice of Store the fetcher needs; tests substitute
// a fake.
type accountLoader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
}

// Fetcher refreshes session users from the accounts collection on every
// request, so renames take effect and deleted accounts lose their sessions
// without re-logging-in. Sessions carry the account _id from login, and the
// lookup here keys on that same identifier; a member whose profile document
// is missing (the signup profile step can fail) still keeps a working
// session. Satisfies auth.UserFetcher.
type Fetcher struct {
	accounts accountLoader
	log      *zap.Logger
}

func NewFetcher(store *Store, logger *zap.Logger) *Fetcher {
	return &Fetcher{accounts: store, log: logger}
}

// FetchUser returns the current account for the given ID, or nil if the ID
// is malformed or the account no longer exists. A nil return lets the
// request proceed unauthenticated.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		f.log.Debug("session refresh: bad account id", zap.String("account_id", userID))
		return nil
	}

	acct, err := f.accounts.GetByID(ctx, oid)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		f.log.Warn("session refresh failed", zap.String("account_id", userID), zap.Error(err))
		return nil
	}

	return &auth.SessionUser{
		ID:    userID,
		Name:  acct.FullName,
		Email: acct.Email,
	}
}
