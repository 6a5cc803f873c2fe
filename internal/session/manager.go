// Package session owns the authentication lifecycle: bootstrapping stored
// credentials at startup, login, logout, and exposing the current user to the
// rest of the application.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/tokenstore"
)

type State int

const (
	Bootstrapping State = iota
	Anonymous
	Authenticated
)

type Snapshot struct {
	State State
	Token string
	User  *models.User
}

func (s Snapshot) IsAuthenticated() bool { return s.State == Authenticated }
func (s Snapshot) IsBootstrapping() bool { return s.State == Bootstrapping }

type NavIntent int

const (
	// NavigateLogin asks the hosting layer to move to the login entry point.
	NavigateLogin NavIntent = iota
)

var (
	// ErrBusy is returned when a login or logout is already in flight.
	// Concurrent mutations are rejected, not queued.
	ErrBusy = errors.New("session: operation already in flight")

	ErrClosed = errors.New("session: manager closed")

	// ErrUnreachable replaces transport errors during login so the form can
	// show a connection hint instead of a raw network error.
	ErrUnreachable = errors.New("login failed: check your connection")
)

// API is the slice of the backend the manager needs.
type API interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Manager is the session state machine. It is the only component allowed to
// touch the token store. It implements apiclient.TokenSource, so the HTTP
// client picks up whatever token the current session holds.
type Manager struct {
	api   API
	store tokenstore.Store
	log   *slog.Logger
	now   func() time.Time

	mu           sync.Mutex
	snap         Snapshot
	busy         bool
	bootstrapped bool
	closed       bool
	subs         []chan Snapshot
	nav          chan NavIntent
}

func NewManager(api API, store tokenstore.Store, log *slog.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		now:   time.Now,
		snap:  Snapshot{State: Bootstrapping},
		nav:   make(chan NavIntent, 4),
	}
}

// Token implements apiclient.TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Token
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// CurrentRoleName returns the authenticated user's role name.
func (m *Manager) CurrentRoleName() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.State != Authenticated || m.snap.User == nil {
		return "", false
	}
	return m.snap.User.Role.Name, true
}

// Subscribe returns a channel receiving state snapshots. Notification is
// non-blocking: a slow consumer misses intermediate snapshots but is never
// able to stall the manager.
func (m *Manager) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 8)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Navigations carries redirect intents (currently only NavigateLogin on
// logout). The hosting layer decides how to realize them.
func (m *Manager) Navigations() <-chan NavIntent {
	return m.nav
}

// Close tears the manager down. In-flight operations finish quietly: their
// state updates are discarded, not errored.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
}

// Bootstrap resolves the stored credential into Anonymous or Authenticated.
// It runs once per manager; later calls return the already-resolved snapshot.
// Expected failures (no token, expired token, rejected token, unreachable
// backend) all resolve to Anonymous and clear the store.
func (m *Manager) Bootstrap(ctx context.Context) Snapshot {
	m.mu.Lock()
	if m.bootstrapped || m.closed {
		snap := m.snap
		m.mu.Unlock()
		return snap
	}
	m.bootstrapped = true
	m.busy = true
	m.mu.Unlock()

	rec, err := m.store.Load()
	if err != nil || rec == nil {
		if err != nil {
			m.log.Warn("session store unreadable", "err", err)
		}
		return m.commit(Snapshot{State: Anonymous})
	}

	exp, err := DecodeExpiry(rec.Token)
	if err != nil || (!exp.IsZero() && !exp.After(m.now())) {
		m.log.Info("stored token expired or malformed, clearing")
		m.clearStore()
		return m.commit(Snapshot{State: Anonymous})
	}

	m.setToken(rec.Token)
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Info("stored token rejected", "err", err)
		m.clearStore()
		return m.commit(Snapshot{State: Anonymous})
	}

	return m.commit(Snapshot{State: Authenticated, Token: rec.Token, User: user})
}

// Login exchanges credentials for a token and resolves the profile. The raw
// token is persisted before the profile fetch, so a crash in between still
// leaves a token to validate on the next bootstrap. Any failure clears the
// store and resolves Anonymous.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if err := m.begin(); err != nil {
		return err
	}

	token, err := m.api.IssueToken(ctx, username, password)
	if err != nil {
		m.clearStore()
		m.commit(Snapshot{State: Anonymous})
		return loginError(err)
	}

	if err := m.store.Save(token, nil); err != nil {
		m.clearStore()
		m.commit(Snapshot{State: Anonymous})
		return err
	}
	m.setToken(token)

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.clearStore()
		m.commit(Snapshot{State: Anonymous})
		return loginError(err)
	}

	if err := m.store.Save(token, user); err != nil {
		m.clearStore()
		m.commit(Snapshot{State: Anonymous})
		return err
	}

	m.commit(Snapshot{State: Authenticated, Token: token, User: user})
	return nil
}

// Logout clears the session unconditionally and emits a NavigateLogin intent.
// It never fails from the caller's perspective; a second call on an anonymous
// session is a no-op.
func (m *Manager) Logout() error {
	if err := m.begin(); err != nil {
		return err
	}

	m.clearStore()
	m.commit(Snapshot{State: Anonymous})

	select {
	case m.nav <- NavigateLogin:
	default:
	}
	return nil
}

// begin claims the exclusive right to mutate session state.
func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	return nil
}

// commit installs the resolved snapshot and notifies subscribers. After Close
// the update is dropped on the floor.
func (m *Manager) commit(snap Snapshot) Snapshot {
	m.mu.Lock()
	m.busy = false
	if m.closed {
		cur := m.snap
		m.mu.Unlock()
		return cur
	}
	m.snap = snap
	subs := make([]chan Snapshot, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
		}
	}
	return snap
}

func (m *Manager) setToken(token string) {
	m.mu.Lock()
	if !m.closed {
		m.snap.Token = token
	}
	m.mu.Unlock()
}

func (m *Manager) clearStore() {
	if err := m.store.Clear(); err != nil {
		m.log.Warn("failed to clear token store", "err", err)
	}
}

// loginError keeps backend-provided messages (bad credentials, validation)
// and hides transport noise behind a generic connection hint.
func loginError(err error) error {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == apiclient.KindUnreachable {
			return ErrUnreachable
		}
		return apiErr
	}
	return ErrUnreachable
}
