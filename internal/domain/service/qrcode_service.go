package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateCouponQR renders a coupon code as a PNG QR image.
	GenerateCouponQR(code string) ([]byte, error)
}
