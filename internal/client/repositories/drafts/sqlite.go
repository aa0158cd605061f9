package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/intramail/intramail/internal/client/models"
	"github.com/intramail/intramail/internal/common"
	"github.com/intramail/intramail/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the draft by id. UpdatedAt is set by the database.
func (r *SQLiteRepository) Save(ctx context.Context, draft *models.Draft) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drafts (id, to_email, subject, body, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			to_email = excluded.to_email,
			subject = excluded.subject,
			body = excluded.body,
			updated_at = CURRENT_TIMESTAMP
	`, draft.ID, draft.To, draft.Subject, draft.Body)
	if err != nil {
		return fmt.Errorf("failed to save draft[%s]: %w", draft.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Draft, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, to_email, subject, body, updated_at FROM drafts WHERE id = ?`, id)

	d := &models.Draft{}
	err := row.Scan(&d.ID, &d.To, &d.Subject, &d.Body, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft[%s]: %w", id, err)
	}
	return d, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Draft, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, to_email, subject, body, updated_at FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var result []*models.Draft
	for rows.Next() {
		d := &models.Draft{}
		if err := rows.Scan(&d.ID, &d.To, &d.Subject, &d.Body, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draft rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft[%s]: %w", id, err)
	}
	return nil
}
