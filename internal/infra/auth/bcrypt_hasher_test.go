package auth

import (
	"testing"

	"tienda/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   false,
		MaxLength:        72,
	}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := testHasherConfig()
	cfg.Auth.BcryptCost = 6
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	cfg := testHasherConfig()
	cfg.Auth.BcryptCost = 99
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"Complex#Secret9",
		"Passphrase2024",
	}
	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "must be at least 8 characters long"},
		{"Ab1", "must be at least 8 characters long"},
		{"PASSWORD123", "must contain at least one lowercase letter"},
		{"password123", "must contain at least one uppercase letter"},
		{"PasswordABC", "must contain at least one number"},
	}
	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}

func TestBcryptHasher_SpecialCharacterRule(t *testing.T) {
	cfg := testHasherConfig()
	cfg.PasswordStrength.RequireSpecial = true
	hasher := NewBcryptHasher(cfg)

	err := hasher.ValidatePasswordStrength("Password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must contain at least one special character")

	assert.NoError(t, hasher.ValidatePasswordStrength("Password123!"))
}

func TestBcryptHasher_MaxLength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	long := "Aa1" + string(make([]byte, 80))
	err := hasher.ValidatePasswordStrength(long)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 72 characters long")
}
