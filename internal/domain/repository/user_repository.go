// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with the profile attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their username, with the profile attached.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether any account already uses the username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether any account already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListByType retrieves all users whose profile matches the given type.
	ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.User, error)

	// CountByType returns the number of profiles of the given type.
	CountByType(ctx context.Context, profileType entity.ProfileType) (int64, error)

	// Create persists a new user entity together with its profile.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity and its profile in the storage.
	Update(ctx context.Context, user *entity.User) error
}
