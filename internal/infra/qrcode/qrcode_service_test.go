package qrcode

import (
	"testing"

	"tienda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQRConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testQRConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeService_NilConfigSection(t *testing.T) {
	service := NewQRCodeService(&config.Config{})
	assert.NotNil(t, service)

	qrBytes, err := service.GenerateCouponQR("WELCOME-DEFAULTS")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))

	qrBytes, err := service.GenerateCouponQR("WELCOME-A1B2C3D4")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateCouponQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testQRConfig(tt.size, "M"))

			qrBytes, err := service.GenerateCouponQR("WELCOME-A1B2C3D4")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateCouponQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))

	_, err := service.GenerateCouponQR("")
	assert.Error(t, err)
}
