// Package clips provides the PostgreSQL-backed repository for clip metadata:
// ingestion commits, per-code listings, and ownership queries.
package clips

import (
	"context"
	"fmt"

	"github.com/nathanjchan/dothething-backend/internal/dbx"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

// PostgresRepository implements clip storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert commits a clip keyed on its asset key. The insert is conditional:
// a clip that already exists is left untouched, so redelivered upload
// notifications are a no-op. Returns whether a row was written.
func (r *PostgresRepository) Insert(ctx context.Context, clip *models.Clip) (bool, error) {
	query := `
		INSERT INTO clips (id, code, account_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, clip.ID, clip.Code, clip.AccountID, clip.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

// ListByCode returns all clips under a code, ascending by creation time.
// An unknown code yields an empty slice, not an error.
func (r *PostgresRepository) ListByCode(ctx context.Context, code string) ([]*models.Clip, error) {
	query := `
		SELECT id, code, account_id, created_at FROM clips
		WHERE code = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to select clips: %w", err)
	}
	defer rows.Close()

	var result []*models.Clip
	for rows.Next() {
		var item models.Clip
		if err := rows.Scan(&item.ID, &item.Code, &item.AccountID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CodeExists reports whether any clip already bears the given code.
func (r *PostgresRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM clips WHERE code = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// DistinctCodesByAccount returns the set of codes owned by the account.
func (r *PostgresRepository) DistinctCodesByAccount(ctx context.Context, accountID string) ([]string, error) {
	query := `
		SELECT DISTINCT code FROM clips
		WHERE account_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to select codes: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		result = append(result, code)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
