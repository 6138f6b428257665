package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating and comment left by a customer for a business account.
// A reviewer may leave at most one review per business user, enforced both
// here and by a unique index at the storage layer.
type Review struct {
	ID             uuid.UUID
	BusinessUserID uuid.UUID // The account being reviewed.
	ReviewerID     uuid.UUID // The customer writing the review.
	Rating         int       // Integer in [MinRating, MaxRating].
	Description    string    // Optional free text.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
