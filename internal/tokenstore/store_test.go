package tokenstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/tokenstore"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := tokenstore.NewFileStore(path)

	rec, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, rec, "empty store loads nil")

	user := &models.User{ID: 1, Username: "alice", Role: models.Role{Name: "Admin"}}
	require.NoError(t, store.Save("token-1", user))

	rec, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "token-1", rec.Token)
	require.Equal(t, "alice", rec.User.Username)
	require.Equal(t, "Admin", rec.User.Role.Name)
}

func TestFileStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := tokenstore.NewFileStore(path)

	require.NoError(t, store.Save("token-1", &models.User{Username: "alice"}))
	require.NoError(t, store.Save("token-2", &models.User{Username: "bob"}))

	rec, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "token-2", rec.Token)
	require.Equal(t, "bob", rec.User.Username)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := tokenstore.NewFileStore(path)

	require.NoError(t, store.Clear(), "clearing an empty store is a no-op")

	require.NoError(t, store.Save("token", nil))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	rec, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestFileStoreCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := tokenstore.NewFileStore(path)
	rec, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestMemoryStore(t *testing.T) {
	store := tokenstore.NewMemoryStore()

	rec, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, rec)

	require.NoError(t, store.Save("token", &models.User{Username: "alice"}))
	rec, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "token", rec.Token)

	require.NoError(t, store.Clear())
	rec, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, rec)
}
