package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/server/models"
)

// InMemoryRepository serves a fixed catalog seeded at construction, the
// same entries the SQL seed migration installs.
type InMemoryRepository struct {
	mu          sync.RWMutex
	communities []models.Community
	clubs       []models.Club
	rooms       []models.ChatRoom
}

func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{}
	for _, seed := range [][2]string{
		{"Computer Science Hub", "Discussion and resources for CS students"},
		{"Engineering Excellence", "Engineering projects and collaboration"},
		{"Business Minds", "Business strategies and entrepreneurship"},
		{"Design Collective", "UI/UX and graphic design community"},
	} {
		r.communities = append(r.communities, models.Community{ID: uuid.New(), Name: seed[0], Description: seed[1]})
	}
	for _, seed := range [][2]string{
		{"Coding Warriors", "Competitive programming and hackathons"},
		{"Debate Society", "Improve your argumentation skills"},
		{"Photography Club", "Capture memories and learn techniques"},
		{"Fitness Squad", "Stay healthy and motivated together"},
	} {
		r.clubs = append(r.clubs, models.Club{ID: uuid.New(), Name: seed[0], Description: seed[1]})
	}
	for _, name := range []string{"General Discussion", "Study Group - DSA", "Internship Tips", "Campus Events"} {
		r.rooms = append(r.rooms, models.ChatRoom{ID: uuid.New(), Name: name})
	}
	return r
}

func (r *InMemoryRepository) Communities(context.Context) ([]models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Community(nil), r.communities...), nil
}

func (r *InMemoryRepository) Clubs(context.Context) ([]models.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Club(nil), r.clubs...), nil
}

func (r *InMemoryRepository) ChatRooms(context.Context) ([]models.ChatRoom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ChatRoom(nil), r.rooms...), nil
}
