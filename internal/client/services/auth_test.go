package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/client/registration"
	"github.com/krishavya/ufresher/internal/client/session"
	"github.com/krishavya/ufresher/internal/logging"
)

const testAdminCode = "Createrkkrishavya"

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthFixture(fb *fakeBackend, store *memStore) AuthService {
	sessions := session.NewManager(store, testLogger(), nil)
	resolver := registration.NewResolver(testAdminCode)
	return NewAuthService(fb, resolver, sessions, store, testLogger())
}

func validSignUp() registration.Submission {
	return registration.Submission{
		Email:       "a@b.com",
		Password:    "x",
		Name:        "A",
		Age:         "19",
		College:     "X",
		Stream:      "CS",
		Role:        "junior",
		AvatarIndex: 1,
	}
}

func TestSignUpAdminCodeElevates(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	sub := validSignUp()
	sub.AdminCode = testAdminCode

	account, err := svc.SignUp(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, account.Role)
	require.Len(t, fb.accounts, 1)
	assert.Equal(t, models.RoleAdmin, fb.accounts[0].Role)
	require.NotNil(t, svc.Current())
	assert.Equal(t, models.RoleAdmin, svc.Current().Role)
}

func TestSignUpWrongAdminCodeCreatesNothing(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	sub := validSignUp()
	sub.AdminCode = "wrong"

	_, err := svc.SignUp(context.Background(), sub)
	require.Error(t, err)

	var verrs registration.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Invalid admin code", verrs["adminCode"])

	assert.Empty(t, fb.accounts, "no account may be created on a rejected admin code")
	assert.Nil(t, svc.Current())
	assert.Empty(t, store.data)
}

func TestSignUpWithoutAdminCodeKeepsRole(t *testing.T) {
	fb := newFakeBackend()
	svc := newAuthFixture(fb, newMemStore())

	sub := validSignUp()
	sub.Role = "mentor"

	account, err := svc.SignUp(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMentor, account.Role)
}

func TestSignUpProviderFailure(t *testing.T) {
	fb := newFakeBackend()
	fb.signUpErr = backend.ErrEmailTaken
	svc := newAuthFixture(fb, newMemStore())

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.ErrorIs(t, err, backend.ErrEmailTaken)
	assert.Nil(t, svc.Current())
}

func TestSignInValidatesBeforeProvider(t *testing.T) {
	fb := newFakeBackend()
	fb.signInErr = errors.New("must not be called")
	svc := newAuthFixture(fb, newMemStore())

	_, err := svc.SignIn(context.Background(), registration.Submission{})
	var verrs registration.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Email is required", verrs["email"])
	assert.Equal(t, "Password is required", verrs["password"])
}

func TestSignInEstablishesSessionAndToken(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	account, err := svc.SignIn(context.Background(), registration.Submission{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, account.ID, svc.Current().ID)
	assert.Equal(t, []byte(fb.token), store.data[tokenKey])
}

func TestSignInInvalidCredentials(t *testing.T) {
	fb := newFakeBackend()
	fb.signInErr = backend.ErrInvalidCredentials
	svc := newAuthFixture(fb, newMemStore())

	_, err := svc.SignIn(context.Background(), registration.Submission{Email: "a@b.com", Password: "x"})
	require.ErrorIs(t, err, backend.ErrInvalidCredentials)
	assert.Nil(t, svc.Current())
}

func TestRestoreRoundTrip(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	account, err := svc.SignIn(context.Background(), registration.Submission{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	// A fresh process over the same store picks the session back up.
	fb2 := newFakeBackend()
	svc2 := newAuthFixture(fb2, store)
	svc2.Restore(context.Background())

	require.NotNil(t, svc2.Current())
	assert.Equal(t, account.ID, svc2.Current().ID)
	assert.Equal(t, fb.token, fb2.Token())
}

func TestRestoreWithoutToken(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	_, err := svc.SignIn(context.Background(), registration.Submission{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	// A session without its token cannot talk to the backend.
	delete(store.data, tokenKey)

	svc2 := newAuthFixture(newFakeBackend(), store)
	svc2.Restore(context.Background())
	assert.Nil(t, svc2.Current())
}

func TestRestoreNothingPersisted(t *testing.T) {
	svc := newAuthFixture(newFakeBackend(), newMemStore())
	svc.Restore(context.Background())
	assert.Nil(t, svc.Current())
}

func TestSignOutClearsLocalState(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	_, err := svc.SignIn(context.Background(), registration.Submission{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background()))
	assert.Nil(t, svc.Current())
	assert.Empty(t, store.data[tokenKey])
}

func TestSignOutSurvivesProviderFailure(t *testing.T) {
	fb := newFakeBackend()
	fb.signOutErr = backend.ErrUnavailable
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	_, err := svc.SignIn(context.Background(), registration.Submission{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background()))
	assert.Nil(t, svc.Current())
}

func TestCompleteGoogleSignIn(t *testing.T) {
	fb := newFakeBackend()
	store := newMemStore()
	svc := newAuthFixture(fb, store)

	account, err := svc.CompleteGoogleSignIn(context.Background(), "code123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleJunior, account.Role)
	require.NotNil(t, svc.Current())
	assert.Equal(t, []byte(fb.token), store.data[tokenKey])
}

func TestCompleteGoogleSignInExchangeFailure(t *testing.T) {
	fb := newFakeBackend()
	fb.exchangeErr = backend.ErrUnauthorized
	svc := newAuthFixture(fb, newMemStore())

	_, err := svc.CompleteGoogleSignIn(context.Background(), "bad")
	require.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Nil(t, svc.Current())
}
