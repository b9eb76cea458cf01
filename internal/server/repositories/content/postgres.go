package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/dbx"
	"github.com/krishavya/ufresher/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (id, room_id, sender_id, content, flagged)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		message.ID, message.RoomID, message.SenderID, message.Content, message.Flagged,
	).Scan(&message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return message, nil
}

func (r *PostgresRepository) MessagesByRoom(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	query :=
		`SELECT id, room_id, sender_id, content, flagged, created_at FROM messages
		 WHERE room_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Content, &m.Flagged, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) SetMessageFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	return r.setFlagged(ctx, "messages", id, flagged)
}

func (r *PostgresRepository) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO posts (id, author_id, community_id, club_id, content, flagged)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.AuthorID, post.CommunityID, post.ClubID, post.Content, post.Flagged,
	).Scan(&post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) Posts(ctx context.Context, communityID, clubID *uuid.UUID) ([]models.Post, error) {
	query :=
		`SELECT id, author_id, community_id, club_id, content, flagged, created_at FROM posts
		 WHERE ($1::uuid IS NULL OR community_id = $1)
		   AND ($2::uuid IS NULL OR club_id = $2)
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, communityID, clubID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.CommunityID, &p.ClubID, &p.Content, &p.Flagged, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) SetPostFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	return r.setFlagged(ctx, "posts", id, flagged)
}

func (r *PostgresRepository) setFlagged(ctx context.Context, table string, id uuid.UUID, flagged bool) error {
	// table is one of two compile-time constants, never user input.
	query := fmt.Sprintf(`UPDATE %s SET flagged = $1 WHERE id = $2`, table)

	res, err := r.db.ExecContext(ctx, query, flagged, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
