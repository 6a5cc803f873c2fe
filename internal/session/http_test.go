package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/server/servertest"
	"github.com/okhotnikov/libman/internal/services"
	"github.com/okhotnikov/libman/internal/session"
	"github.com/okhotnikov/libman/internal/tokenstore"
)

// wire builds the full client stack against a running backend.
func wire(t *testing.T, baseURL string, store tokenstore.Store) *session.Manager {
	t.Helper()
	client := apiclient.New(baseURL, nil)
	m := newManager(services.NewAuthService(client), store)
	client.SetTokenSource(m)
	t.Cleanup(m.Close)
	return m
}

func TestFullLoginFlowOverHTTP(t *testing.T) {
	ts, _ := servertest.Start(t)
	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	m := wire(t, ts.URL, store)
	snap := m.Bootstrap(context.Background())
	require.Equal(t, session.Anonymous, snap.State)

	require.NoError(t, m.Login(context.Background(), servertest.AdminUser, servertest.AdminPassword))
	role, ok := m.CurrentRoleName()
	require.True(t, ok)
	require.Equal(t, "Admin", role)

	rec, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotEmpty(t, rec.Token)
	require.Equal(t, servertest.AdminUser, rec.User.Username)

	// A fresh process finds the stored token and resolves straight to
	// Authenticated via the profile endpoint.
	m2 := wire(t, ts.URL, store)
	snap = m2.Bootstrap(context.Background())
	require.Equal(t, session.Authenticated, snap.State)
	require.Equal(t, servertest.AdminUser, snap.User.Username)
}

func TestFailedLoginOverHTTP(t *testing.T) {
	ts, _ := servertest.Start(t)
	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	m := wire(t, ts.URL, store)
	m.Bootstrap(context.Background())

	err := m.Login(context.Background(), servertest.AdminUser, "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid username or password")
	require.Equal(t, session.Anonymous, m.Snapshot().State)

	rec, lerr := store.Load()
	require.NoError(t, lerr)
	require.Nil(t, rec)
}

func TestLogoutOverHTTP(t *testing.T) {
	ts, _ := servertest.Start(t)
	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	m := wire(t, ts.URL, store)
	m.Bootstrap(context.Background())
	require.NoError(t, m.Login(context.Background(), servertest.MemberUser, servertest.MemberPassword))

	require.NoError(t, m.Logout())
	require.Equal(t, session.Anonymous, m.Snapshot().State)

	rec, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, rec)
}
