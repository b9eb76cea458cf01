package services

import (
	"context"

	"github.com/krishavya/ufresher/internal/server/models"
	"github.com/krishavya/ufresher/internal/server/repositories/directory"
)

// CatalogService serves the browseable directory.
type CatalogService struct {
	directory directory.Repository
}

func NewCatalogService(repo directory.Repository) *CatalogService {
	return &CatalogService{directory: repo}
}

func (s *CatalogService) Communities(ctx context.Context) ([]models.Community, error) {
	return s.directory.Communities(ctx)
}

func (s *CatalogService) Clubs(ctx context.Context) ([]models.Club, error) {
	return s.directory.Clubs(ctx)
}

func (s *CatalogService) ChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	return s.directory.ChatRooms(ctx)
}
