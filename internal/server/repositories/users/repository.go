// Package users provides persistence for user accounts.
package users

import (
	"context"

	"github.com/intramail/intramail/internal/server/models"
)

// Repository is the storage contract for user rows.
//
// Create returns common.ErrorConflict when the email is already taken, so
// callers never inspect driver-specific error codes. GetByEmail returns
// common.ErrorNotFound for unknown emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
