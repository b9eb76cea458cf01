package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/moderation"
)

func newGateFixture(fb *fakeBackend) ModerationGate {
	return NewModerationGate(fb, moderation.NewDenylistPolicy(), testLogger())
}

func TestCheckUsesRemoteVerdict(t *testing.T) {
	fb := newFakeBackend()
	fb.classifyVerdict = moderation.Verdict{Appropriate: false, Reason: "classifier said no"}
	gate := newGateFixture(fb)

	verdict := gate.Check(context.Background(), "hello everyone")
	assert.False(t, verdict.Appropriate)
	assert.Equal(t, "classifier said no", verdict.Reason)
}

func TestCheckFallsBackWhenClassifierDown(t *testing.T) {
	fb := newFakeBackend()
	fb.classifyErr = backend.ErrClassifierUnavailable
	gate := newGateFixture(fb)

	clean := gate.Check(context.Background(), "see you at the club meetup")
	assert.True(t, clean.Appropriate)
	assert.Empty(t, clean.Reason)

	dirty := gate.Check(context.Background(), "this is such a SCAM")
	assert.False(t, dirty.Appropriate)
	assert.NotEmpty(t, dirty.Reason)
}

func TestReportRequiresAdmin(t *testing.T) {
	fb := newFakeBackend()
	gate := newGateFixture(fb)
	id := uuid.New()

	err := gate.Report(context.Background(), nil, backend.ContentPost, id, true)
	require.ErrorIs(t, err, ErrNotAdmin)

	junior := &models.Account{ID: uuid.New(), Role: models.RoleJunior}
	err = gate.Report(context.Background(), junior, backend.ContentPost, id, true)
	require.ErrorIs(t, err, ErrNotAdmin)

	assert.Empty(t, fb.flagged)
}

func TestReportFlipsFlaggedBit(t *testing.T) {
	fb := newFakeBackend()
	gate := newGateFixture(fb)
	admin := &models.Account{ID: uuid.New(), Role: models.RoleAdmin}

	approvedID := uuid.New()
	require.NoError(t, gate.Report(context.Background(), admin, backend.ContentPost, approvedID, true))
	assert.False(t, fb.flagged[approvedID])
	assert.Equal(t, backend.ContentPost, fb.flagKinds[approvedID])

	rejectedID := uuid.New()
	require.NoError(t, gate.Report(context.Background(), admin, backend.ContentMessage, rejectedID, false))
	assert.True(t, fb.flagged[rejectedID])
	assert.Equal(t, backend.ContentMessage, fb.flagKinds[rejectedID])
}
