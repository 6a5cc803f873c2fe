// Package routeguard decides whether a requested view may be entered given
// the current session state. It is a pure function over a snapshot; it never
// touches the network or the token store.
package routeguard

import (
	"github.com/okhotnikov/libman/internal/session"
)

type Action int

const (
	// Defer means the session is still bootstrapping: render a neutral
	// placeholder and make no redirect yet.
	Defer Action = iota
	Allow
	RedirectLogin
	RedirectForbidden
)

const (
	LoginPath     = "/login"
	ForbiddenPath = "/forbidden"
)

// RouteSpec describes the requirements of the requested view.
type RouteSpec struct {
	Path         string
	RequiresAuth bool
	RequiresRole string // empty means any authenticated user
}

type Decision struct {
	Action     Action
	RedirectTo string
	// ReturnTo remembers the originally requested destination when
	// redirecting to login.
	ReturnTo string
}

// Decide applies the guard table. Authentication takes precedence over
// authorization: an anonymous request for a role-gated view goes to login,
// not to the forbidden page.
func Decide(snap session.Snapshot, route RouteSpec) Decision {
	if !route.RequiresAuth {
		return Decision{Action: Allow}
	}

	switch snap.State {
	case session.Bootstrapping:
		return Decision{Action: Defer}
	case session.Anonymous:
		return Decision{Action: RedirectLogin, RedirectTo: LoginPath, ReturnTo: route.Path}
	}

	if route.RequiresRole != "" {
		if snap.User == nil || snap.User.Role.Name != route.RequiresRole {
			return Decision{Action: RedirectForbidden, RedirectTo: ForbiddenPath}
		}
	}
	return Decision{Action: Allow}
}
