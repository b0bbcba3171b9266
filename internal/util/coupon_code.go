package util

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

const couponCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCouponCode builds a welcome coupon code with a random
// 8-character uppercase alphanumeric suffix.
func GenerateCouponCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}
	for i, b := range buf {
		buf[i] = couponCodeAlphabet[int(b)%len(couponCodeAlphabet)]
	}
	return "WELCOME-" + string(buf), nil
}
