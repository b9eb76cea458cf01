package content

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/server/models"
)

// InMemoryRepository is a map-backed content store for development and
// tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]models.Message
	posts    map[uuid.UUID]models.Post
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		messages: make(map[uuid.UUID]models.Message),
		posts:    make(map[uuid.UUID]models.Post),
	}
}

func (r *InMemoryRepository) CreateMessage(_ context.Context, message *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.CreatedAt = time.Now()
	r.messages[message.ID] = *message
	return message, nil
}

func (r *InMemoryRepository) MessagesByRoom(_ context.Context, roomID uuid.UUID) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Message
	for _, m := range r.messages {
		if m.RoomID == roomID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *InMemoryRepository) SetMessageFlagged(_ context.Context, id uuid.UUID, flagged bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok {
		return common.ErrorNotFound
	}
	m.Flagged = flagged
	r.messages[id] = m
	return nil
}

func (r *InMemoryRepository) CreatePost(_ context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.CreatedAt = time.Now()
	r.posts[post.ID] = *post
	return post, nil
}

func (r *InMemoryRepository) Posts(_ context.Context, communityID, clubID *uuid.UUID) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Post
	for _, p := range r.posts {
		if communityID != nil && (p.CommunityID == nil || *p.CommunityID != *communityID) {
			continue
		}
		if clubID != nil && (p.ClubID == nil || *p.ClubID != *clubID) {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *InMemoryRepository) SetPostFlagged(_ context.Context, id uuid.UUID, flagged bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return common.ErrorNotFound
	}
	p.Flagged = flagged
	r.posts[id] = p
	return nil
}
