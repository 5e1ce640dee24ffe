// Package services contains application services for the storefront
// client: thin glue between the API client and the local session state,
// so the command layer never talks to either directly about credentials.
package services

import (
	"context"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
	"github.com/hiddenhaul/haul/internal/client/session"
)

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and establish the session.
//   - Register: create an account and establish the session.
//   - Logout: drop the session; the backend holds no server-side session
//     to destroy, so this never makes a request.
//   - Restore: hydrate the session from the local store at start-up.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Register(ctx context.Context, reg api.Registration) (models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sess *session.Store) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	u, err := a.client.LoginUser(ctx, email, string(password))
	if err != nil {
		return models.User{}, err
	}

	if err := a.session.Login(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (a *authService) Register(ctx context.Context, reg api.Registration) (models.User, error) {
	u, err := a.client.RegisterUser(ctx, reg)
	if err != nil {
		return models.User{}, err
	}

	if err := a.session.Login(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Restore(ctx)
}
