// Package drafts stores unsent messages in the client's local database.
package drafts

import (
	"context"

	"github.com/intramail/intramail/internal/client/models"
)

type Repository interface {
	Save(ctx context.Context, draft *models.Draft) error
	Get(ctx context.Context, id string) (*models.Draft, error)
	List(ctx context.Context) ([]*models.Draft, error)
	Delete(ctx context.Context, id string) error
}
