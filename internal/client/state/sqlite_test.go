package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := Open(context.Background(), "file:state_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, _ = db.Exec(`DELETE FROM kv`)
	return NewSQLiteStore(db)
}

func TestSQLiteStore_SetGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session_account", []byte(`{"id":"1"}`)))

	got, err := s.Get(ctx, "session_account")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"1"}`), got)
}

func TestSQLiteStore_GetMissingReturnsNil(t *testing.T) {
	s := setupStore(t)

	got, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestSQLiteStore_DeleteAndClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	require.NoError(t, s.Delete(ctx, "a"))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Get(ctx, "b")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteStore_DeleteMissingIsNoop(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Delete(context.Background(), "ghost"))
}
