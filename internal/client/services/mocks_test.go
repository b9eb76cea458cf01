package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/moderation"
)

// fakeBackend is an in-memory backend.Client for service tests.
type fakeBackend struct {
	accounts []models.Account
	token    string

	signInErr   error
	signUpErr   error
	signOutErr  error
	exchangeErr error

	classifyVerdict moderation.Verdict
	classifyErr     error

	flagged   map[uuid.UUID]bool
	flagKinds map[uuid.UUID]backend.ContentKind
}

var _ backend.Client = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		flagged:   make(map[uuid.UUID]bool),
		flagKinds: make(map[uuid.UUID]backend.ContentKind),
	}
}

func (f *fakeBackend) SignUp(_ context.Context, req backend.SignUpRequest) (*models.Account, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	account := models.Account{
		ID:        uuid.New(),
		Email:     req.Email,
		Name:      req.Name,
		Age:       req.Age,
		College:   req.College,
		Stream:    req.Stream,
		Role:      req.Role,
		Avatar:    req.Avatar,
		CreatedAt: time.Now(),
	}
	f.accounts = append(f.accounts, account)
	f.token = "token-" + account.ID.String()
	return &account, nil
}

func (f *fakeBackend) SignIn(_ context.Context, email, _ string) (*models.Account, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	account := models.Account{ID: uuid.New(), Email: email, Role: models.RoleJunior}
	f.token = "token-" + account.ID.String()
	return &account, nil
}

func (f *fakeBackend) GoogleConsentURL(context.Context) (string, error) {
	return "https://accounts.google.com/o/oauth2/auth?state=test", nil
}

func (f *fakeBackend) ExchangeGoogleCode(_ context.Context, _ string) (*models.Account, error) {
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	account := models.Account{ID: uuid.New(), Email: "user@gmail.com", Role: models.RoleJunior}
	f.token = "token-" + account.ID.String()
	return &account, nil
}

func (f *fakeBackend) SignOut(context.Context) error {
	f.token = ""
	return f.signOutErr
}

func (f *fakeBackend) CurrentAccount(context.Context) (*models.Account, error) {
	return nil, backend.ErrUnauthorized
}

func (f *fakeBackend) Communities(context.Context) ([]models.Community, error) { return nil, nil }
func (f *fakeBackend) Clubs(context.Context) ([]models.Club, error)           { return nil, nil }
func (f *fakeBackend) ChatRooms(context.Context) ([]models.ChatRoom, error)   { return nil, nil }

func (f *fakeBackend) Messages(context.Context, uuid.UUID) ([]models.Message, error) {
	return nil, nil
}

func (f *fakeBackend) Posts(context.Context, *uuid.UUID, *uuid.UUID) ([]models.Post, error) {
	return nil, nil
}

func (f *fakeBackend) SendMessage(_ context.Context, roomID uuid.UUID, content string, flagged bool) (*models.Message, error) {
	return &models.Message{ID: uuid.New(), RoomID: roomID, Content: content, Flagged: flagged}, nil
}

func (f *fakeBackend) CreatePost(_ context.Context, req backend.CreatePostRequest) (*models.Post, error) {
	return &models.Post{ID: uuid.New(), Content: req.Content, Flagged: req.Flagged}, nil
}

func (f *fakeBackend) SetFlagged(_ context.Context, kind backend.ContentKind, id uuid.UUID, flagged bool) error {
	f.flagged[id] = flagged
	f.flagKinds[id] = kind
	return nil
}

func (f *fakeBackend) Classify(context.Context, string) (moderation.Verdict, error) {
	if f.classifyErr != nil {
		return moderation.Verdict{}, f.classifyErr
	}
	return f.classifyVerdict, nil
}

func (f *fakeBackend) Ping(context.Context) error { return nil }
func (f *fakeBackend) SetToken(token string)      { f.token = token }
func (f *fakeBackend) Token() string              { return f.token }

// memStore is an in-memory state.Store.
type memStore struct {
	data    map[string][]byte
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	if s.failSet {
		return context.DeadlineExceeded
	}
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.data = make(map[string][]byte)
	return nil
}
