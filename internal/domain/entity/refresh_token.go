package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted long-lived credential used to mint new access
// tokens. Tokens are rotated on refresh and deleted on logout.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token has passed its expiry.
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
