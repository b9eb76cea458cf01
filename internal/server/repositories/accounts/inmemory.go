package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/server/models"
)

// InMemoryRepository is a map-backed account store for development and
// tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{accounts: make(map[uuid.UUID]models.Account)}
}

func (r *InMemoryRepository) Create(_ context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	account.CreatedAt = time.Now()
	r.accounts[account.ID] = *account
	return account, nil
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Email == email {
			found := account
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &account, nil
}

func (r *InMemoryRepository) GetByGoogleID(_ context.Context, googleID string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if googleID == "" {
		return nil, common.ErrorNotFound
	}
	for _, account := range r.accounts {
		if account.GoogleID == googleID {
			found := account
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}
