// Package messages provides persistence for mail rows.
package messages

import (
	"context"

	"github.com/intramail/intramail/internal/server/models"
)

// Repository is the storage contract for message rows. Messages are
// append-only: there are no update or delete operations.
type Repository interface {
	Insert(ctx context.Context, msg *models.Message) (*models.Message, error)
	ListForEmail(ctx context.Context, email string, limit int) ([]*models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
}
