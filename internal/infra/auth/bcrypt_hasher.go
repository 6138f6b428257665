// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt truncates input beyond 72 bytes; never accept more.
	maxPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	minLength := defaultMinPasswordLength
	maxLength := maxPasswordLength
	if cfg.PasswordStrength != nil {
		if cfg.PasswordStrength.MinLength > 0 {
			minLength = cfg.PasswordStrength.MinLength
		}
		if cfg.PasswordStrength.MaxLength > 0 && cfg.PasswordStrength.MaxLength < maxLength {
			maxLength = cfg.PasswordStrength.MaxLength
		}
	}

	return &bcryptHasher{
		cost:      cost,
		minLength: minLength,
		maxLength: maxLength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the configured length bounds.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}
	if len(password) > h.maxLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too long")
	}

	return nil
}
