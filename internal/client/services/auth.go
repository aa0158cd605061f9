// Package services contains application services for the mail client.
// This file defines the authentication service: register, login, session
// restore and logout over the REST client and the session manager.
package services

import (
	"context"

	"github.com/intramail/intramail/internal/client/api"
	"github.com/intramail/intramail/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: authenticate and install the session token.
//   - Restore: install a previously persisted token without validating it.
//   - Logout: clear the in-memory and persisted credential.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	Restore(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	IsLoggedIn() bool
	CurrentEmail() string
}

type authService struct {
	client  api.Client
	session *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client
// and session manager.
func NewAuthService(client api.Client, sm *session.Manager) AuthService {
	return &authService{client: client, session: sm}
}

func (a *authService) Register(ctx context.Context, email, name, password string) (*api.User, error) {
	return a.client.Register(ctx, email, name, password)
}

func (a *authService) Login(ctx context.Context, email, password string) (*api.User, error) {
	return a.session.Login(ctx, email, password)
}

func (a *authService) Restore(ctx context.Context) (bool, error) {
	return a.session.Restore(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) IsLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *authService) CurrentEmail() string {
	return a.session.Email()
}
