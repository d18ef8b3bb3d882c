package accounts

import (
	"context"

	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, account *models.Account) (*models.Account, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	SetInteractions(ctx context.Context, id string, interactions int64) error
}
