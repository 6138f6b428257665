// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains the fundamental identity information shared across both profile types.
type User struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Username  string       // Unique login identifier, title-cased at registration.
	FirstName string       // Derived from the first word of the registration username.
	LastName  string       // Derived from the remaining words of the registration username.
	Email     string       // The user's unique contact email.
	Password  string       // The bcrypt hash of the user's password, never the plaintext.
	Profile   *UserProfile // The attached profile. Every account carries exactly one.
	CreatedAt time.Time    // Timestamp of when this user account was created.
	UpdatedAt time.Time    // Timestamp of the last modification to this user's data.
}

// DisplayName returns the public-facing name, e.g. "Max Muster".
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsBusiness reports whether the account carries a business profile.
func (u *User) IsBusiness() bool {
	return u.Profile != nil && u.Profile.Type == ProfileTypeBusiness
}

// IsCustomer reports whether the account carries a customer profile.
func (u *User) IsCustomer() bool {
	return u.Profile != nil && u.Profile.Type == ProfileTypeCustomer
}

// UserProfile holds the contact and presentation data attached to an account.
// Type is fixed at registration and never mutated afterwards.
type UserProfile struct {
	UserID       uuid.UUID   // Foreign Key that links this profile to a core User entity.
	Type         ProfileType // customer or business, immutable after creation.
	Bio          string
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	File         string    // Reference into the binary asset store (avatar image).
	CreatedAt    time.Time // Timestamp of when this profile was created, immutable.
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}
