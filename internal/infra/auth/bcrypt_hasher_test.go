package auth

import (
	"strings"
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	// Low cost keeps the hashing tests fast.
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	password := "correct horse battery"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())
	password := "correct horse battery"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	// Default bounds: at least 8 characters, at most 72 (bcrypt input limit)
	assert.NoError(t, hasher.ValidatePasswordStrength("12345678"))
	assert.NoError(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 72)))

	err := hasher.ValidatePasswordStrength("short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Input validation failed")

	err = hasher.ValidatePasswordStrength(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_ConfiguredBounds(t *testing.T) {
	cfg := testConfig()
	cfg.PasswordStrength = &config.PasswordStrengthConfig{MinLength: 12, MaxLength: 20}
	hasher := NewBcryptHasher(cfg)

	assert.Error(t, hasher.ValidatePasswordStrength("elevenchars"))
	assert.NoError(t, hasher.ValidatePasswordStrength("twelve chars"))
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 21)))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	cfg := testConfig()
	cfg.Auth.BcryptCost = customCost
	hasher := NewBcryptHasher(cfg)

	password := "correct horse battery"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check(password, hash))
}
