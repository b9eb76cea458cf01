// Package db wires concrete repository implementations into a single
// manager the services are built from.
package db

import (
	"context"
	"database/sql"

	"github.com/krishavya/ufresher/internal/server/repositories/accounts"
	"github.com/krishavya/ufresher/internal/server/repositories/content"
	"github.com/krishavya/ufresher/internal/server/repositories/directory"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
	Directory() directory.Repository
	Content() content.Repository
}
