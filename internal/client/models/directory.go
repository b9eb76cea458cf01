package models

import (
	"time"

	"github.com/google/uuid"
)

// Directory records are the read-only dashboard views served by the
// backend record store.

type Community struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Club struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatRoom struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	OnlineCount int       `json:"online_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	Flagged   bool      `json:"flagged"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	ClubID      *uuid.UUID `json:"club_id,omitempty"`
	Content     string     `json:"content"`
	Flagged     bool       `json:"flagged"`
	CreatedAt   time.Time  `json:"created_at"`
}
