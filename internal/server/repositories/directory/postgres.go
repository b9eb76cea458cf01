package directory

import (
	"context"
	"fmt"

	"github.com/krishavya/ufresher/internal/dbx"
	"github.com/krishavya/ufresher/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Communities(ctx context.Context) ([]models.Community, error) {
	query := `SELECT id, name, description FROM communities ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Community
	for rows.Next() {
		var c models.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Clubs(ctx context.Context) ([]models.Club, error) {
	query := `SELECT id, name, description FROM clubs ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) ChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	query := `SELECT id, name FROM chat_rooms ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.ChatRoom
	for rows.Next() {
		var room models.ChatRoom
		if err := rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, room)
	}
	return result, rows.Err()
}
