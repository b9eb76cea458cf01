package db

import (
	"context"
	"database/sql"

	"github.com/krishavya/ufresher/internal/server/repositories/accounts"
	"github.com/krishavya/ufresher/internal/server/repositories/content"
	"github.com/krishavya/ufresher/internal/server/repositories/directory"
)

// InMemoryRepositoryManager backs the server with map-based stores. Used
// when no database DSN is configured, and in tests.
type InMemoryRepositoryManager struct {
	accounts  accounts.Repository
	directory directory.Repository
	content   content.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m InMemoryRepositoryManager) Directory() directory.Repository {
	return m.directory
}

func (m InMemoryRepositoryManager) Content() content.Repository {
	return m.content
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		accounts:  accounts.NewInMemoryRepository(),
		directory: directory.NewInMemoryRepository(),
		content:   content.NewInMemoryRepository(),
	}
}
