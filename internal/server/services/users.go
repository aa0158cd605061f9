// Package services holds the business logic of the mail server: account
// registration, login/token issuance, and message send/list.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/intramail/intramail/internal/common"
	"github.com/intramail/intramail/internal/server/auth"
	"github.com/intramail/intramail/internal/server/config"
	"github.com/intramail/intramail/internal/server/models"
	"github.com/intramail/intramail/internal/server/repositories/users"
)

// LoginResult is what a successful login returns to the transport layer.
type LoginResult struct {
	Token string
	User  *models.User
}

type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the input, hashes the password, and inserts the user.
// A duplicate email surfaces as common.ErrorConflict straight from the
// repository; any other store failure is collapsed to common.ErrorInternal.
// The returned user carries no password hash.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {

	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, common.ErrorInternal
	}

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates by email and password and issues a session token.
// An unknown email and a wrong password both return common.ErrorUnauthorized
// so callers cannot probe which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(auth.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user.PasswordHash = ""
	return &LoginResult{Token: token, User: user}, nil
}
