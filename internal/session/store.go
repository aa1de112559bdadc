// Package session implements server-side session storage. A session is an
// opaque token mapped to a user id; the token itself carries no claims, so
// revocation is immediate and each device holds an independent session.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Store persists the token -> user id mapping.
type Store interface {
	// Create registers a new session for the user and returns its token.
	Create(ctx context.Context, userID string) (string, error)

	// Get resolves a token to the owning user id, or ErrNotFound.
	Get(ctx context.Context, token string) (string, error)

	// Delete revokes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
