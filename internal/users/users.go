// Package users persists the authentication gateway's user records.
//
// Two backends exist: an in-memory map for development and tests, and a
// MongoDB collection for deployments. Both provide atomic per-document
// reads and writes; nothing here spans multiple records.
package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user matches a lookup.
var ErrNotFound = errors.New("there is no user matching your query")

// User is a server-side user record.
//
// ProviderID links the record to an OAuth identity, e.g. "google:12345".
// It is empty for records that were never linked to a provider.
type User struct {
	ID         string `json:"id" bson:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the user
	Username   string `json:"username" bson:"username" example:"John Doe"`                 // Display name
	ProviderID string `json:"providerId,omitempty" bson:"providerId,omitempty"`            // OAuth provider identity, if linked
}

// Update holds the fields of a user that can be changed after creation.
// Nil fields are left untouched.
type Update struct {
	Username   *string
	ProviderID *string
}

// Store persists user records.
type Store interface {
	// User returns the user with the given ID.
	User(ctx context.Context, id string) (User, error)

	// UserByUsername returns the first user with the given display name.
	UserByUsername(ctx context.Context, username string) (User, error)

	// UserByProviderID returns the user linked to the given provider identity.
	UserByProviderID(ctx context.Context, providerID string) (User, error)

	// Create stores a new user and assigns it an ID.
	Create(ctx context.Context, user User) (User, error)

	// Update merges the set fields into the user with the given ID and
	// returns the updated record. Returns ErrNotFound for unknown IDs.
	Update(ctx context.Context, id string, update Update) (User, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
