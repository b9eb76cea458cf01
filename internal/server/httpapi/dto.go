// Package httpapi exposes the backend over a JSON HTTP API.
package httpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/server/models"
)

// accountView is the public shape of an account. The password hash and
// provider id never leave the server.
type accountView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	College   string    `json:"college"`
	Stream    string    `json:"stream"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountView(a *models.Account) accountView {
	return accountView{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Age:       a.Age,
		College:   a.College,
		Stream:    a.Stream,
		Role:      a.Role,
		Avatar:    a.Avatar,
		CreatedAt: a.CreatedAt,
	}
}

type communityView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type clubView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type chatRoomView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type messageView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	Flagged   bool      `json:"flagged"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageView(m *models.Message) messageView {
	return messageView{
		ID:        m.ID,
		RoomID:    m.RoomID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Flagged:   m.Flagged,
		CreatedAt: m.CreatedAt,
	}
}

type postView struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	ClubID      *uuid.UUID `json:"club_id,omitempty"`
	Content     string     `json:"content"`
	Flagged     bool       `json:"flagged"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toPostView(p *models.Post) postView {
	return postView{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		CommunityID: p.CommunityID,
		ClubID:      p.ClubID,
		Content:     p.Content,
		Flagged:     p.Flagged,
		CreatedAt:   p.CreatedAt,
	}
}
