// Package tokenstore persists the bearer token and the last-fetched user
// profile between runs. It is a durable key-value slot: no validation,
// parsing or network access happens here.
package tokenstore

import "github.com/okhotnikov/libman/internal/models"

type Record struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

type Store interface {
	// Save persists the pair; a later Load sees either the previous record
	// or this one, never a mix.
	Save(token string, user *models.User) error
	// Load returns the last saved record, or nil if never saved or cleared.
	Load() (*Record, error)
	// Clear removes the record. Clearing an empty store is a no-op.
	Clear() error
}
