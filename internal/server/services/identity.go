// Package services contains the server's application services on top of
// the repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/server/auth"
	"github.com/krishavya/ufresher/internal/server/config"
	"github.com/krishavya/ufresher/internal/server/models"
	"github.com/krishavya/ufresher/internal/server/oauth"
	"github.com/krishavya/ufresher/internal/server/repositories/accounts"
)

// SignUpParams is a validated registration request. Role arrives already
// resolved by the client.
type SignUpParams struct {
	Email    string
	Password string
	Name     string
	Age      string
	College  string
	Stream   string
	Role     string
	Avatar   string
}

// IdentityService registers and authenticates accounts and issues the
// bearer tokens the API runs on.
type IdentityService struct {
	accounts accounts.Repository
	provider oauth.Provider
	config   *config.Config
}

func NewIdentityService(repo accounts.Repository, provider oauth.Provider, cfg *config.Config) *IdentityService {
	return &IdentityService{accounts: repo, provider: provider, config: cfg}
}

func (s *IdentityService) SignUp(ctx context.Context, params SignUpParams) (*models.Account, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: string(hash),
		Name:         params.Name,
		Age:          params.Age,
		College:      params.College,
		Stream:       params.Stream,
		Role:         params.Role,
		Avatar:       params.Avatar,
	}

	account, err = s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrEmailAlreadyTaken
		}
		return nil, "", err
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if account.PasswordHash == "" {
		// OAuth-only account; no password to compare against.
		return nil, "", common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// GoogleConsentURL returns the provider consent page with a fresh state.
func (s *IdentityService) GoogleConsentURL() (string, error) {
	if s.provider == nil {
		return "", errors.New("google sign-in is not configured")
	}
	state, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}
	return s.provider.GetConsentURL(state), nil
}

// GoogleExchange completes the OAuth flow. An account is looked up by
// provider id first, then by email (linking the identities), and created
// as a junior when neither exists.
func (s *IdentityService) GoogleExchange(ctx context.Context, code string) (*models.Account, string, error) {
	if s.provider == nil {
		return nil, "", errors.New("google sign-in is not configured")
	}

	info, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("oauth exchange: %w", err)
	}

	account, err := s.accounts.GetByGoogleID(ctx, info.ID)
	if errors.Is(err, common.ErrorNotFound) {
		account, err = s.accounts.GetByEmail(ctx, info.Email)
		if errors.Is(err, common.ErrorNotFound) {
			account, err = s.accounts.Create(ctx, &models.Account{
				ID:       uuid.New(),
				Email:    info.Email,
				Name:     info.Name,
				Role:     models.RoleJunior,
				Avatar:   info.AvatarURL,
				GoogleID: info.ID,
			})
		}
	}
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *IdentityService) AccountByID(ctx context.Context, id string) (*models.Account, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	return s.accounts.GetByID(ctx, parsed)
}

func (s *IdentityService) issueToken(account *models.Account) (string, error) {
	token, err := auth.GenerateToken(account.ID.String(), []byte(s.config.SecretKey), s.config.AccessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
