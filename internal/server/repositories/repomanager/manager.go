package repomanager

import (
	"context"
	"database/sql"

	"github.com/jfrjs/publicada/internal/dbx"
	"github.com/jfrjs/publicada/internal/server/repositories/accounts"
	"github.com/jfrjs/publicada/internal/server/repositories/records"
	"github.com/jfrjs/publicada/internal/server/repositories/refreshtokens"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Records(db dbx.DBTX) records.Repository
}
