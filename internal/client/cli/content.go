package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/services"
)

// getMultiline is an indirection for tests, same as getSimpleText.
var getMultiline = GetMultiline

// Say sends a chat message. The content passes through the moderation
// gate first; inappropriate content is still delivered but arrives
// flagged for admin review.
func (a *App) Say(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	roomID, err := a.promptID("Enter room id")
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Message:", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Nothing to send.")
		return nil
	}

	verdict := a.gate.Check(ctx, content)
	if !verdict.Appropriate {
		printlnFn("Heads up:", verdict.Reason)
	}

	if _, err := a.client.SendMessage(ctx, roomID, content, !verdict.Appropriate); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	return nil
}

// Posts lists posts, optionally filtered by community or club.
func (a *App) Posts(ctx context.Context) error {
	scope, err := getSimpleText(a.reader, "Filter by (c)ommunity, c(l)ub, or leave empty for all", os.Stdout)
	if err != nil {
		return err
	}

	var communityID, clubID *uuid.UUID
	switch scope {
	case "":
	case "c", "community":
		id, err := a.promptID("Enter community id")
		if err != nil {
			return err
		}
		communityID = &id
	case "l", "club":
		id, err := a.promptID("Enter club id")
		if err != nil {
			return err
		}
		clubID = &id
	default:
		printlnFn("Expected 'c', 'l', or empty.")
		return nil
	}

	posts, err := a.client.Posts(ctx, communityID, clubID)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	for _, p := range posts {
		mark := ""
		if p.Flagged {
			mark = " [flagged]"
		}
		printlnFn(fmt.Sprintf("%s  %s%s: %s", p.ID, p.AuthorID, mark, p.Content))
	}
	return nil
}

// Post creates a post in a community or club.
func (a *App) Post(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	scope, err := getSimpleText(a.reader, "Post to (c)ommunity or c(l)ub?", os.Stdout)
	if err != nil {
		return err
	}

	req := backend.CreatePostRequest{}
	switch scope {
	case "c", "community":
		id, err := a.promptID("Enter community id")
		if err != nil {
			return err
		}
		req.CommunityID = &id
	case "l", "club":
		id, err := a.promptID("Enter club id")
		if err != nil {
			return err
		}
		req.ClubID = &id
	default:
		printlnFn("Expected 'c' or 'l'.")
		return nil
	}

	content, err := getMultiline(a.reader, "Post content:", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Nothing to post.")
		return nil
	}

	verdict := a.gate.Check(ctx, content)
	if !verdict.Appropriate {
		printlnFn("Heads up:", verdict.Reason)
	}
	req.Content = content
	req.Flagged = !verdict.Appropriate

	if _, err := a.client.CreatePost(ctx, req); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	return nil
}

// Check runs a text through the moderation gate without sending anything.
func (a *App) Check(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Text to check:", os.Stdout)
	if err != nil {
		return err
	}

	verdict := a.gate.Check(ctx, content)
	if verdict.Appropriate {
		printlnFn("Looks fine.")
	} else {
		printlnFn("Would be flagged:", verdict.Reason)
	}
	return nil
}

// Moderate records an admin review decision on a post or message.
func (a *App) Moderate(ctx context.Context) error {
	kindRaw, err := getSimpleText(a.reader, "Content kind (post or message)", os.Stdout)
	if err != nil {
		return err
	}
	var kind backend.ContentKind
	switch kindRaw {
	case "post":
		kind = backend.ContentPost
	case "message":
		kind = backend.ContentMessage
	default:
		printlnFn("Expected 'post' or 'message'.")
		return nil
	}

	id, err := a.promptID("Enter content id")
	if err != nil {
		return err
	}

	decision, err := getSimpleText(a.reader, "Approve? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	approved := decision == "y" || decision == "yes"

	err = a.gate.Report(ctx, a.auth.Current(), kind, id, approved)
	switch {
	case err == nil:
		printlnFn("Recorded.")
		return nil
	case errors.Is(err, services.ErrNotAdmin):
		printlnFn("Only admins can moderate content.")
	default:
		printlnFn("error:", err.Error())
	}
	return err
}
