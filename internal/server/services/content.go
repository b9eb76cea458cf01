package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/moderation"
	"github.com/krishavya/ufresher/internal/server/models"
	"github.com/krishavya/ufresher/internal/server/repositories/content"
)

// ErrUnknownContentKind rejects flag updates on anything that is not a
// post or a message.
var ErrUnknownContentKind = errors.New("unknown content kind")

// CreatePostParams is a validated post creation request. Exactly one of
// CommunityID and ClubID must be set; the handler enforces that.
type CreatePostParams struct {
	CommunityID *uuid.UUID
	ClubID      *uuid.UUID
	Content     string
	Flagged     bool
}

// ContentService stores messages and posts and runs the server-side
// content classifier.
type ContentService struct {
	content           content.Repository
	policy            moderation.Policy
	classifierEnabled bool
}

func NewContentService(repo content.Repository, policy moderation.Policy, classifierEnabled bool) *ContentService {
	return &ContentService{content: repo, policy: policy, classifierEnabled: classifierEnabled}
}

func (s *ContentService) SendMessage(ctx context.Context, senderID, roomID uuid.UUID, text string, flagged bool) (*models.Message, error) {
	return s.content.CreateMessage(ctx, &models.Message{
		ID:       uuid.New(),
		RoomID:   roomID,
		SenderID: senderID,
		Content:  text,
		Flagged:  flagged,
	})
}

func (s *ContentService) Messages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	return s.content.MessagesByRoom(ctx, roomID)
}

func (s *ContentService) CreatePost(ctx context.Context, authorID uuid.UUID, params CreatePostParams) (*models.Post, error) {
	return s.content.CreatePost(ctx, &models.Post{
		ID:          uuid.New(),
		AuthorID:    authorID,
		CommunityID: params.CommunityID,
		ClubID:      params.ClubID,
		Content:     params.Content,
		Flagged:     params.Flagged,
	})
}

func (s *ContentService) Posts(ctx context.Context, communityID, clubID *uuid.UUID) ([]models.Post, error) {
	return s.content.Posts(ctx, communityID, clubID)
}

// SetFlagged updates the review bit on a post or message.
func (s *ContentService) SetFlagged(ctx context.Context, kind string, id uuid.UUID, flagged bool) error {
	switch kind {
	case "post":
		return s.content.SetPostFlagged(ctx, id, flagged)
	case "message":
		return s.content.SetMessageFlagged(ctx, id, flagged)
	default:
		return ErrUnknownContentKind
	}
}

// Classify runs the configured policy over the text. When the classifier
// is disabled the caller gets ErrClassifierDisabled and is expected to
// fall back to its own policy.
func (s *ContentService) Classify(_ context.Context, text string) (moderation.Verdict, error) {
	if !s.classifierEnabled {
		return moderation.Verdict{}, common.ErrClassifierDisabled
	}
	return s.policy.Check(text), nil
}
