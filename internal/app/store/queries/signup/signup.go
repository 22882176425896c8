// internal/app/store/queries/signup/signup.go

// Package signup runs registration as two writes: the login identity first,
// then the member profile. If the profile insert fails the identity is
// kept, so the member can sign in and the profile is created lazily or by
// support. There is no rollback.
package signup

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/app/store/accounts"
	"github.com/ecochef/ecochef/internal/domain/models"
)

var (
	ErrEmailTaken    = errors.New("signup: email already registered")
	ErrIdentity      = errors.New("signup: could not create login identity")
	ErrProfileFailed = errors.New("signup: could not create member profile")
)

// IdentityCreator registers the login credentials.
type IdentityCreator interface {
	Create(ctx context.Context, email, password, fullName string) (*models.Account, error)
}

// ProfileCreator registers the member profile.
type ProfileCreator interface {
	Create(ctx context.Context, fullName, email string) (*models.User, error)
}

type Runner struct {
	Accounts IdentityCreator
	Users    ProfileCreator
	Log      *zap.Logger
}

// Run creates the identity, then the profile. On profile failure the
// returned account is non-nil so the handler can still start a session.
func (r *Runner) Run(ctx context.Context, fullName, email, password string) (*models.Account, *models.User, error) {
	acct, err := r.Accounts.Create(ctx, email, password, fullName)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicateEmail) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrIdentity, err)
	}

	user, err := r.Users.Create(ctx, fullName, email)
	if err != nil {
		// The identity stays; the member can log in without a profile.
		r.Log.Error("profile create failed after identity create",
			zap.String("email", acct.Email),
			zap.Error(err))
		return acct, nil, fmt.Errorf("%w: %v", ErrProfileFailed, err)
	}

	return acct, user, nil
}
