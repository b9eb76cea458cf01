package models

import (
	"time"

	"github.com/google/uuid"
)

// Community is a college-wide space students join.
type Community struct {
	Name        string
	Description string
	ID          uuid.UUID
}

// Club is an interest group inside the platform.
type Club struct {
	Name        string
	Description string
	ID          uuid.UUID
}

// ChatRoom is a named room messages are exchanged in.
type ChatRoom struct {
	Name string
	ID   uuid.UUID
}

// Message is a chat message. Flagged messages await admin review.
type Message struct {
	CreatedAt time.Time
	Content   string
	ID        uuid.UUID
	RoomID    uuid.UUID
	SenderID  uuid.UUID
	Flagged   bool
}

// Post belongs to either a community or a club, never both.
type Post struct {
	CreatedAt   time.Time
	Content     string
	CommunityID *uuid.UUID
	ClubID      *uuid.UUID
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Flagged     bool
}
