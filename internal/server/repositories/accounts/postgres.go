// Package accounts provides the PostgreSQL-backed repository for account
// records: login upserts, session lookups, and the interactions snapshot.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nathanjchan/dothething-backend/internal/common"
	"github.com/nathanjchan/dothething-backend/internal/dbx"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert creates the account on first login or rotates its session token and
// last-login timestamp on subsequent logins. created_at and interactions are
// only written on insert.
func (r *PostgresRepository) Upsert(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, session_id, created_at, last_login_at, interactions)
		 VALUES ($1, $2, $3, $3, 0)
		 ON CONFLICT (id)
		 DO UPDATE SET session_id = EXCLUDED.session_id, last_login_at = EXCLUDED.last_login_at
		 RETURNING created_at, interactions
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.SessionID, account.LastLoginAt).Scan(&account.CreatedAt, &account.Interactions)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// GetBySessionID returns the account whose current session token equals
// sessionID. session_id is a secondary index that yields at most one live
// match because tokens are overwritten, not appended.
func (r *PostgresRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.Account, error) {
	query :=
		`SELECT id, session_id, created_at, last_login_at, interactions FROM accounts
		 WHERE session_id = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&account.ID, &account.SessionID, &account.CreatedAt, &account.LastLoginAt, &account.Interactions)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// GetByID returns the account with the given primary id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT id, session_id, created_at, last_login_at, interactions FROM accounts
		 WHERE id = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.SessionID, &account.CreatedAt, &account.LastLoginAt, &account.Interactions)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// SetInteractions overwrites the interactions snapshot for the account.
func (r *PostgresRepository) SetInteractions(ctx context.Context, id string, interactions int64) error {
	query :=
		`UPDATE accounts SET interactions = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, interactions)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
