// Package session owns the binding between the running client and at
// most one account. The active account is persisted in the local KV
// store so it survives restarts, and is erased on sign-out.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/client/state"
	"github.com/krishavya/ufresher/internal/logging"
)

// accountKey is the fixed storage key for the serialized account.
const accountKey = "session_account"

// Notification is a fire-and-forget, user-facing signal emitted on
// session changes. It is not part of the session's correctness.
type Notification struct {
	Title  string
	Detail string
}

// Notifier consumes session notifications, e.g. printing them in the UI.
type Notifier interface {
	Notify(n Notification)
}

// Manager holds the active session and keeps the persisted copy in sync.
// It is owned by a single client process; callers interact with it only
// through Restore, Establish and Terminate.
type Manager struct {
	store    state.Store
	log      logging.Logger
	notifier Notifier
	current  *models.Account
}

func NewManager(store state.Store, log logging.Logger, notifier Notifier) *Manager {
	return &Manager{store: store, log: log, notifier: notifier}
}

// Current returns the active account, or nil when signed out.
func (m *Manager) Current() *models.Account {
	return m.current
}

// Active reports whether a session is established.
func (m *Manager) Active() bool {
	return m.current != nil
}

// Restore loads a previously persisted account and establishes it as the
// active session. Absent or malformed data is treated as "no session";
// Restore never returns an error to the caller.
func (m *Manager) Restore(ctx context.Context) {
	raw, err := m.store.Get(ctx, accountKey)
	if err != nil {
		m.log.Warn(ctx, "session restore failed", "err", err)
		return
	}
	if raw == nil {
		return
	}

	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		m.log.Warn(ctx, "discarding malformed persisted session", "err", err)
		return
	}
	if account.ID == uuid.Nil || !account.Role.IsValid() {
		m.log.Warn(ctx, "discarding incomplete persisted session")
		return
	}

	m.current = &account
	m.log.Info(ctx, "session restored", "email", account.Email, "role", account.Role)
}

// Establish sets account as the active session and persists it,
// overwriting any prior persisted session. If the storage write fails
// the in-memory session remains authoritative for this run; a later
// Restore in a new run will simply not see it.
func (m *Manager) Establish(ctx context.Context, account *models.Account) {
	m.current = account

	if err := m.persist(ctx, account); err != nil {
		m.log.Warn(ctx, "session persisted in memory only", "err", err)
	}

	m.notify(Notification{
		Title:  "Welcome to U-fresher",
		Detail: fmt.Sprintf("signed in as %s", account.Role),
	})
}

// Terminate clears the active session and erases the persisted copy.
// It is idempotent: terminating with no active session is a no-op.
func (m *Manager) Terminate(ctx context.Context) {
	if m.current == nil {
		return
	}
	m.current = nil

	if err := m.store.Delete(ctx, accountKey); err != nil {
		m.log.Warn(ctx, "failed to erase persisted session", "err", err)
	}

	m.notify(Notification{
		Title:  "Signed out",
		Detail: "come back soon",
	})
}

func (m *Manager) persist(ctx context.Context, account *models.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, accountKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (m *Manager) notify(n Notification) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(n)
}
