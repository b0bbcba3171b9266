package auth

import (
	"testing"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.Generate(userID, "user@example.com", entity.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.SecretKey.Token = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.Generate(uuid.New(), "user@example.com", entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Auth.TokenTTL = -time.Minute
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.Generate(uuid.New(), "user@example.com", entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	// An unsigned token must never validate, even with matching claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "customer",
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testTokenConfig()
	cfg.SecretKey.Token = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.TokenTTL())

	// Unset TTL falls back to a full day.
	cfg := testTokenConfig()
	cfg.Auth.TokenTTL = 0
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, jwtService.TokenTTL())
}
