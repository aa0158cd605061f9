// Package repomanager wires the SQL connection to the repositories and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/intramail/intramail/internal/server/repositories/messages"
	"github.com/intramail/intramail/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the shared connection
// pool and exposes the pool itself for transactions and health checks.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Messages() messages.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
