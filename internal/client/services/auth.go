// Package services contains the client's application services: the
// authentication flow tying the resolver, the identity provider and the
// session manager together, and the moderation gate for user content.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/client/registration"
	"github.com/krishavya/ufresher/internal/client/session"
	"github.com/krishavya/ufresher/internal/client/state"
	"github.com/krishavya/ufresher/internal/logging"
)

// tokenKey is the storage key for the backend bearer token, kept next to
// the persisted session so an authenticated session survives restarts.
const tokenKey = "session_token"

// AuthService drives sign-in, sign-up, OAuth and sign-out.
//
// Contract:
//   - Restore: re-establish a persisted session at startup, silently.
//   - SignIn / SignUp: validate the submission, delegate credentials to
//     the identity provider, establish the session on success.
//   - Submission failures come back as registration.ValidationErrors;
//     provider failures keep their backend sentinel so the caller can
//     offer a retry.
type AuthService interface {
	Restore(ctx context.Context)
	SignIn(ctx context.Context, sub registration.Submission) (*models.Account, error)
	SignUp(ctx context.Context, sub registration.Submission) (*models.Account, error)
	GoogleConsentURL(ctx context.Context) (string, error)
	CompleteGoogleSignIn(ctx context.Context, code string) (*models.Account, error)
	SignOut(ctx context.Context) error
	Current() *models.Account
}

type authService struct {
	client   backend.Client
	resolver *registration.Resolver
	sessions *session.Manager
	store    state.Store
	log      logging.Logger
}

func NewAuthService(client backend.Client, resolver *registration.Resolver, sessions *session.Manager, store state.Store, log logging.Logger) AuthService {
	return &authService{client: client, resolver: resolver, sessions: sessions, store: store, log: log}
}

func (a *authService) Current() *models.Account {
	return a.sessions.Current()
}

// Restore re-establishes the persisted session and bearer token. Missing
// or malformed state leaves the client signed out.
func (a *authService) Restore(ctx context.Context) {
	a.sessions.Restore(ctx)
	if !a.sessions.Active() {
		return
	}

	token, err := a.store.Get(ctx, tokenKey)
	if err != nil || token == nil {
		a.log.Warn(ctx, "restored session has no usable token, signing out", "err", err)
		a.sessions.Terminate(ctx)
		return
	}
	a.client.SetToken(string(token))
}

func (a *authService) SignIn(ctx context.Context, sub registration.Submission) (*models.Account, error) {
	if _, err := a.resolver.Resolve(sub, registration.ModeSignIn); err != nil {
		return nil, err
	}

	account, err := a.client.SignIn(ctx, sub.Email, sub.Password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	a.establish(ctx, account)
	return account, nil
}

func (a *authService) SignUp(ctx context.Context, sub registration.Submission) (*models.Account, error) {
	resolution, err := a.resolver.Resolve(sub, registration.ModeSignUp)
	if err != nil {
		return nil, err
	}

	account, err := a.client.SignUp(ctx, backend.SignUpRequest{
		Email:    sub.Email,
		Password: sub.Password,
		Name:     sub.Name,
		Age:      sub.Age,
		College:  sub.College,
		Stream:   sub.Stream,
		Role:     resolution.Role,
		Avatar:   resolution.Avatar,
	})
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	a.establish(ctx, account)
	return account, nil
}

func (a *authService) GoogleConsentURL(ctx context.Context) (string, error) {
	return a.client.GoogleConsentURL(ctx)
}

// CompleteGoogleSignIn exchanges the pasted OAuth code. The OAuth path
// bypasses form validation; accounts created this way are juniors.
func (a *authService) CompleteGoogleSignIn(ctx context.Context, code string) (*models.Account, error) {
	account, err := a.client.ExchangeGoogleCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google sign in: %w", err)
	}
	if !account.Role.IsValid() {
		account.Role = models.RoleJunior
	}

	a.establish(ctx, account)
	return account, nil
}

// SignOut tears the session down locally even when the provider call
// fails; a stale server-side token is harmless, a stale local session is
// not.
func (a *authService) SignOut(ctx context.Context) error {
	err := a.client.SignOut(ctx)
	if err != nil && !errors.Is(err, backend.ErrUnavailable) && !errors.Is(err, backend.ErrUnauthorized) {
		a.log.Warn(ctx, "provider sign-out failed", "err", err)
	}

	a.sessions.Terminate(ctx)
	if derr := a.store.Delete(ctx, tokenKey); derr != nil {
		a.log.Warn(ctx, "failed to erase persisted token", "err", derr)
	}
	return nil
}

func (a *authService) establish(ctx context.Context, account *models.Account) {
	a.sessions.Establish(ctx, account)
	if token := a.client.Token(); token != "" {
		if err := a.store.Set(ctx, tokenKey, []byte(token)); err != nil {
			a.log.Warn(ctx, "token persisted in memory only", "err", err)
		}
	}
}
