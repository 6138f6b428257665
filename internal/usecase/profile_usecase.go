package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; the profile's type, username and created_at are
// immutable and deliberately absent.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
	File         *string // Asset store reference set by a prior upload.
}

// UploadAvatarInput carries the raw bytes of a profile picture.
type UploadAvatarInput struct {
	Filename string
	Data     []byte
}

// --- Output DTOs ---

// ProfileOutput is the full profile projection returned to its owner and to
// authenticated readers. Optional fields are normalized to "" rather than null.
type ProfileOutput struct {
	User *entity.User
}

// ProfileUsecase defines the interface for profile read and mutation operations.
type ProfileUsecase interface {
	// GetProfile returns the profile of the given account. Any authenticated
	// caller may read any profile.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*ProfileOutput, error)

	// UpdateProfile mutates the caller's own profile. Non-owners are rejected.
	UpdateProfile(ctx context.Context, caller Identity, accountID uuid.UUID, input UpdateProfileInput) (*ProfileOutput, error)

	// UploadAvatar stores the picture bytes and attaches the returned
	// reference to the caller's profile.
	UploadAvatar(ctx context.Context, caller Identity, input UploadAvatarInput) (*ProfileOutput, error)

	// ListByType returns all profiles of the given type.
	ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.User, error)
}
