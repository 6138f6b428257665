// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity is the resolved caller passed explicitly into every operation
// that needs authorization. The delivery layer builds it from the validated
// access token; usecases never reach into ambient request state.
type Identity struct {
	AccountID   uuid.UUID
	ProfileType entity.ProfileType
}

// IsBusiness reports whether the caller holds a business profile.
func (i Identity) IsBusiness() bool {
	return i.ProfileType == entity.ProfileTypeBusiness
}

// IsCustomer reports whether the caller holds a customer profile.
func (i Identity) IsCustomer() bool {
	return i.ProfileType == entity.ProfileTypeCustomer
}
