package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Google(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Communities(ctx context.Context) error
	Clubs(ctx context.Context) error
	Rooms(ctx context.Context) error
	Messages(ctx context.Context) error
	Say(ctx context.Context) error
	Posts(ctx context.Context) error
	Post(ctx context.Context) error
	Check(ctx context.Context) error
	Moderate(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the U-fresher CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate with email and password
//	  - google         — authenticate via Google OAuth
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current profile
//	  - communities    — list communities
//	  - clubs          — list clubs
//	  - rooms          — list chat rooms
//	  - messages       — show a room's messages (interactive prompt)
//	  - say            — send a chat message
//	  - posts          — list posts
//	  - post           — create a post
//	  - check          — dry-run a text against the moderation gate
//	  - moderate       — review flagged content (admin only)
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("uf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, communities, clubs, rooms, messages, say, posts, post, check, moderate, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.Google(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "communities":
			_ = a.Communities(ctx)

		case "clubs":
			_ = a.Clubs(ctx)

		case "rooms":
			_ = a.Rooms(ctx)

		case "messages":
			_ = a.Messages(ctx)

		case "say":
			_ = a.Say(ctx)

		case "posts":
			_ = a.Posts(ctx)

		case "post":
			_ = a.Post(ctx)

		case "check":
			_ = a.Check(ctx)

		case "moderate":
			_ = a.Moderate(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
