package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token does not exist or was revoked.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence operations for refresh tokens.
type RefreshTokenRepository interface {
	// Create persists a newly issued refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a refresh token by its opaque string.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// DeleteByToken revokes a single refresh token.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByUser revokes all refresh tokens of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
