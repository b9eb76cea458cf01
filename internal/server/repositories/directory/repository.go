// Package directory stores the browseable catalog: communities, clubs,
// and chat rooms.
package directory

import (
	"context"

	"github.com/krishavya/ufresher/internal/server/models"
)

type Repository interface {
	Communities(ctx context.Context) ([]models.Community, error)
	Clubs(ctx context.Context) ([]models.Club, error)
	ChatRooms(ctx context.Context) ([]models.ChatRoom, error)
}
