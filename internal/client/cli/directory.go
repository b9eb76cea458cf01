package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Communities lists the communities available on the platform.
func (a *App) Communities(ctx context.Context) error {
	communities, err := a.client.Communities(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	for _, c := range communities {
		printlnFn(fmt.Sprintf("%s  %s — %s", c.ID, c.Name, c.Description))
	}
	return nil
}

// Clubs lists the clubs available on the platform.
func (a *App) Clubs(ctx context.Context) error {
	clubs, err := a.client.Clubs(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	for _, c := range clubs {
		printlnFn(fmt.Sprintf("%s  %s — %s", c.ID, c.Name, c.Description))
	}
	return nil
}

// Rooms lists the chat rooms.
func (a *App) Rooms(ctx context.Context) error {
	rooms, err := a.client.ChatRooms(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	for _, r := range rooms {
		printlnFn(fmt.Sprintf("%s  %s", r.ID, r.Name))
	}
	return nil
}

// Messages prompts for a room and prints its message history. Flagged
// messages are marked so admins can spot them.
func (a *App) Messages(ctx context.Context) error {
	roomID, err := a.promptID("Enter room id")
	if err != nil {
		return err
	}

	messages, err := a.client.Messages(ctx, roomID)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	for _, m := range messages {
		mark := ""
		if m.Flagged {
			mark = " [flagged]"
		}
		printlnFn(fmt.Sprintf("%s  %s%s: %s", m.ID, m.SenderID, mark, m.Content))
	}
	return nil
}

// promptID reads and parses a UUID from the user.
func (a *App) promptID(prompt string) (uuid.UUID, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		printlnFn("Not a valid id:", raw)
		return uuid.Nil, err
	}
	return id, nil
}
