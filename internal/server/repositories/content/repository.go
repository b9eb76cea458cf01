// Package content stores user-generated content: chat messages and posts.
package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/server/models"
)

type Repository interface {
	CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	MessagesByRoom(ctx context.Context, roomID uuid.UUID) ([]models.Message, error)
	SetMessageFlagged(ctx context.Context, id uuid.UUID, flagged bool) error

	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	Posts(ctx context.Context, communityID, clubID *uuid.UUID) ([]models.Post, error)
	SetPostFlagged(ctx context.Context, id uuid.UUID, flagged bool) error
}
