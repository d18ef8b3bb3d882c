package repomanager

import (
	"context"
	"database/sql"

	"github.com/nathanjchan/dothething-backend/internal/dbx"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/accounts"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/clips"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Clips(db dbx.DBTX) clips.Repository
}
