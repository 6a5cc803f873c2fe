package routeguard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/routeguard"
	"github.com/okhotnikov/libman/internal/session"
)

func snapshot(state session.State, role string) session.Snapshot {
	snap := session.Snapshot{State: state}
	if role != "" {
		snap.User = &models.User{ID: 1, Username: "u", Role: models.Role{Name: role}}
	}
	return snap
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		snap  session.Snapshot
		route routeguard.RouteSpec
		want  routeguard.Action
	}{
		{
			name:  "public view is always allowed",
			snap:  snapshot(session.Anonymous, ""),
			route: routeguard.RouteSpec{Path: "/catalog"},
			want:  routeguard.Allow,
		},
		{
			name:  "public view allowed even while bootstrapping",
			snap:  snapshot(session.Bootstrapping, ""),
			route: routeguard.RouteSpec{Path: "/catalog"},
			want:  routeguard.Allow,
		},
		{
			name:  "bootstrapping defers protected view",
			snap:  snapshot(session.Bootstrapping, ""),
			route: routeguard.RouteSpec{Path: "/books", RequiresAuth: true},
			want:  routeguard.Defer,
		},
		{
			name:  "bootstrapping defers even role-gated view",
			snap:  snapshot(session.Bootstrapping, ""),
			route: routeguard.RouteSpec{Path: "/users", RequiresAuth: true, RequiresRole: "Admin"},
			want:  routeguard.Defer,
		},
		{
			name:  "anonymous redirected to login",
			snap:  snapshot(session.Anonymous, ""),
			route: routeguard.RouteSpec{Path: "/books", RequiresAuth: true},
			want:  routeguard.RedirectLogin,
		},
		{
			name:  "authentication beats authorization for anonymous",
			snap:  snapshot(session.Anonymous, ""),
			route: routeguard.RouteSpec{Path: "/users", RequiresAuth: true, RequiresRole: "Admin"},
			want:  routeguard.RedirectLogin,
		},
		{
			name:  "authenticated user allowed on plain protected view",
			snap:  snapshot(session.Authenticated, "Member"),
			route: routeguard.RouteSpec{Path: "/books", RequiresAuth: true},
			want:  routeguard.Allow,
		},
		{
			name:  "matching role allowed",
			snap:  snapshot(session.Authenticated, "Admin"),
			route: routeguard.RouteSpec{Path: "/users", RequiresAuth: true, RequiresRole: "Admin"},
			want:  routeguard.Allow,
		},
		{
			name:  "role mismatch redirected to forbidden",
			snap:  snapshot(session.Authenticated, "Member"),
			route: routeguard.RouteSpec{Path: "/users", RequiresAuth: true, RequiresRole: "Admin"},
			want:  routeguard.RedirectForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := routeguard.Decide(tt.snap, tt.route)
			require.Equal(t, tt.want, got.Action)

			switch tt.want {
			case routeguard.RedirectLogin:
				require.Equal(t, routeguard.LoginPath, got.RedirectTo)
				require.Equal(t, tt.route.Path, got.ReturnTo, "login redirect must remember the destination")
			case routeguard.RedirectForbidden:
				require.Equal(t, routeguard.ForbiddenPath, got.RedirectTo)
			case routeguard.Defer:
				require.Empty(t, got.RedirectTo, "defer must not redirect")
			}
		})
	}
}
