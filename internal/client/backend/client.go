// Package backend defines the boundary to the hosted platform backend:
// identity provider, record store, and content classification. The core
// never talks to the network directly; it goes through the Client
// interface so tests can substitute an in-memory implementation.
package backend

import (
	"context"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/moderation"
)

// ContentKind names a record-store entity that carries a flagged bit.
type ContentKind string

const (
	ContentPost    ContentKind = "post"
	ContentMessage ContentKind = "message"
)

// SignUpRequest carries a fully resolved registration to the identity
// provider. Role is already resolved by the caller; the provider stores
// it as-is.
type SignUpRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Age      string      `json:"age"`
	College  string      `json:"college"`
	Stream   string      `json:"stream"`
	Role     models.Role `json:"role"`
	Avatar   string      `json:"avatar"`
}

// CreatePostRequest targets exactly one of community or club.
type CreatePostRequest struct {
	Content     string     `json:"content"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	ClubID      *uuid.UUID `json:"club_id,omitempty"`
	Flagged     bool       `json:"flagged"`
}

// Client is the remote backend. All methods honor context cancellation;
// transport failures surface as ErrUnavailable so callers can offer a
// retry instead of hanging.
type Client interface {
	// Identity provider.
	SignUp(ctx context.Context, req SignUpRequest) (*models.Account, error)
	SignIn(ctx context.Context, email, password string) (*models.Account, error)
	GoogleConsentURL(ctx context.Context) (string, error)
	ExchangeGoogleCode(ctx context.Context, code string) (*models.Account, error)
	SignOut(ctx context.Context) error
	CurrentAccount(ctx context.Context) (*models.Account, error)

	// Record store reads.
	Communities(ctx context.Context) ([]models.Community, error)
	Clubs(ctx context.Context) ([]models.Club, error)
	ChatRooms(ctx context.Context) ([]models.ChatRoom, error)
	Messages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error)
	Posts(ctx context.Context, communityID, clubID *uuid.UUID) ([]models.Post, error)

	// Record store writes.
	SendMessage(ctx context.Context, roomID uuid.UUID, content string, flagged bool) (*models.Message, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	SetFlagged(ctx context.Context, kind ContentKind, id uuid.UUID, flagged bool) error

	// Content classification. Returns ErrClassifierUnavailable when the
	// service is not configured or unreachable.
	Classify(ctx context.Context, content string) (moderation.Verdict, error)

	Ping(ctx context.Context) error
	SetToken(token string)
	Token() string
}
