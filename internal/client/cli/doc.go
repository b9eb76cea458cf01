// Package cli provides the interactive U-fresher command-line client.
//
// It wires configuration, local session storage, the backend HTTP client,
// and an interactive REPL. Typical flow: restore a persisted session at
// startup, then execute user commands against the backend.
//
// Key features:
//   - Register / Login / Google OAuth / Logout
//   - Browse communities, clubs, and chat rooms
//   - Send chat messages and create posts, moderated on the way in
//   - Admin review of flagged content
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
