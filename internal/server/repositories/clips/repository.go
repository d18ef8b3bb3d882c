package clips

import (
	"context"

	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, clip *models.Clip) (bool, error)
	ListByCode(ctx context.Context, code string) ([]*models.Clip, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	DistinctCodesByAccount(ctx context.Context, accountID string) ([]string, error)
}
