package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/logging"
	"github.com/krishavya/ufresher/internal/moderation"
)

// ErrNotAdmin rejects privileged moderation actions from non-admins.
var ErrNotAdmin = errors.New("moderation report requires the admin role")

// ModerationGate checks user content before it is accepted, and carries
// the privileged review path. Check never fails: when the remote
// classifier is unreachable it degrades to the offline denylist policy.
type ModerationGate interface {
	Check(ctx context.Context, content string) moderation.Verdict
	Report(ctx context.Context, actor *models.Account, kind backend.ContentKind, contentID uuid.UUID, approved bool) error
}

type moderationGate struct {
	client   backend.Client
	fallback moderation.Policy
	log      logging.Logger
}

func NewModerationGate(client backend.Client, fallback moderation.Policy, log logging.Logger) ModerationGate {
	return &moderationGate{client: client, fallback: fallback, log: log}
}

func (g *moderationGate) Check(ctx context.Context, content string) moderation.Verdict {
	verdict, err := g.client.Classify(ctx, content)
	if err == nil {
		return verdict
	}

	// Classifier downtime is not an error the user should see.
	g.log.Debug(ctx, "classifier unavailable, using denylist fallback", "err", err)
	return g.fallback.Check(content)
}

// Report records an explicit review decision by flipping the flagged bit
// on the referenced content. Only admins may call it; the gate itself
// has no notion of a current user, so the actor is passed explicitly.
func (g *moderationGate) Report(ctx context.Context, actor *models.Account, kind backend.ContentKind, contentID uuid.UUID, approved bool) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return ErrNotAdmin
	}
	return g.client.SetFlagged(ctx, kind, contentID, !approved)
}
