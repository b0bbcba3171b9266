package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.domain.net"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@nodot"))
	assert.False(t, ValidateEmail("user @example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateCardNumber(t *testing.T) {
	assert.True(t, ValidateCardNumber("4111111111111111"))
	assert.True(t, ValidateCardNumber("4111 1111 1111 1111"))
	assert.False(t, ValidateCardNumber("411111111111111"))   // 15 digits
	assert.False(t, ValidateCardNumber("41111111111111111")) // 17 digits
	assert.False(t, ValidateCardNumber("4111-1111-1111-1111"))
	assert.False(t, ValidateCardNumber("4111111111111abc"))
}

func TestValidateCVV(t *testing.T) {
	assert.True(t, ValidateCVV("123"))
	assert.True(t, ValidateCVV("1234"))
	assert.False(t, ValidateCVV("12"))
	assert.False(t, ValidateCVV("12345"))
	assert.False(t, ValidateCVV("12a"))
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, ValidateExpiry("12/26", now))
	assert.True(t, ValidateExpiry("07/26", now), "next month is the earliest valid expiry")
	assert.True(t, ValidateExpiry("01/30", now))
	assert.False(t, ValidateExpiry("06/26", now), "current month is already expired")
	assert.False(t, ValidateExpiry("05/26", now), "last month has expired")
	assert.False(t, ValidateExpiry("12/25", now))
	assert.False(t, ValidateExpiry("13/27", now))
	assert.False(t, ValidateExpiry("00/27", now))
	assert.False(t, ValidateExpiry("1/27", now))
	assert.False(t, ValidateExpiry("122026", now))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 1111", MaskCardNumber("4111111111111111"))
	assert.Equal(t, "**** **** **** 1111", MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "****", MaskCardNumber("12"))
}

func TestGenerateCouponCode(t *testing.T) {
	code, err := GenerateCouponCode()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(code, "WELCOME-"))
	suffix := strings.TrimPrefix(code, "WELCOME-")
	require.Len(t, suffix, 8)
	for _, r := range suffix {
		assert.Contains(t, couponCodeAlphabet, string(r))
	}

	other, err := GenerateCouponCode()
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}
