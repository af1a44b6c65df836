// Package store is the persistence boundary of the profile endpoint.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"PROFILEHUB_BACK-END/internal/models"
)

// ErrProfileNotFound is returned when the user has no profile row yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileChanges carries the fields of one write. A nil field is left
// untouched on merge. user_id is never part of a change set; the store
// derives it from the authenticated caller.
type ProfileChanges struct {
	Age         *int
	DateOfBirth *time.Time
	Phone       *string
	CountryCode *string
	Country     *string
	State       *string
	City        *string
}

// ProfileStore provides access to the per-user profile rows.
type ProfileStore interface {
	// GetByUserID returns the user's row or ErrProfileNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	// Upsert inserts a row for userID or merges ch into the existing one,
	// as a single atomic statement. The bool is true when a new row was
	// created.
	Upsert(ctx context.Context, userID uuid.UUID, ch ProfileChanges) (*models.UserProfile, bool, error)

	// Update merges ch into an existing row and returns the result;
	// ErrProfileNotFound when the user has no row.
	Update(ctx context.Context, userID uuid.UUID, ch ProfileChanges) (*models.UserProfile, error)
}
