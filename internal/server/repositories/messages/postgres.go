package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/intramail/intramail/internal/common"
	"github.com/intramail/intramail/internal/dbx"
	"github.com/intramail/intramail/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a message row and fills in the db-assigned id and creation
// timestamp.
func (r *PostgresRepository) Insert(ctx context.Context, msg *models.Message) (*models.Message, error) {

	query :=
		`INSERT INTO messages (from_email, to_email, subject, body)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		msg.FromEmail, msg.ToEmail, msg.Subject, msg.Body).Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

// ListForEmail returns messages where email appears as sender or recipient,
// newest first, capped at limit.
func (r *PostgresRepository) ListForEmail(ctx context.Context, email string, limit int) ([]*models.Message, error) {
	query :=
		`SELECT id, from_email, to_email, COALESCE(subject, ''), COALESCE(body, ''), created_at FROM messages
		 WHERE to_email = $1 OR from_email = $1
		 ORDER BY created_at DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Message, 0)
	for rows.Next() {
		msg := &models.Message{}
		if err := rows.Scan(&msg.ID, &msg.FromEmail, &msg.ToEmail, &msg.Subject, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query :=
		`SELECT id, from_email, to_email, COALESCE(subject, ''), COALESCE(body, ''), created_at FROM messages
		 WHERE id = $1
		 `

	msg := &models.Message{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&msg.ID, &msg.FromEmail, &msg.ToEmail, &msg.Subject, &msg.Body, &msg.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}
