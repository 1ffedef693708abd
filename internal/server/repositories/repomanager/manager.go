// Package repomanager wires the PostgreSQL connection, migrations, and the
// per-entity repositories behind a single handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fintrack/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/fintrack/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Transactions() transactions.Repository
}
