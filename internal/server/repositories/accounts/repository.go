// Package accounts stores registered user accounts.
package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.Account, error)
}
