package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/krishavya/ufresher/internal/server/migrations"
	"github.com/krishavya/ufresher/internal/server/repositories/accounts"
	"github.com/krishavya/ufresher/internal/server/repositories/content"
	"github.com/krishavya/ufresher/internal/server/repositories/directory"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	accounts  accounts.Repository
	directory directory.Repository
	content   content.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) Directory() directory.Repository {
	return m.directory
}

func (m *PostgresRepositoryManager) Content() content.Repository {
	return m.content
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		accounts:  accounts.NewPostgresRepository(db),
		directory: directory.NewPostgresRepository(db),
		content:   content.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
