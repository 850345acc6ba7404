package utils

import (
	"crypto/subtle"
	"strings"

	"github.com/matthewhartstonge/argon2"
)

// HashSecret encodes a shared secret with argon2 so ADMIN_SECRET can hold a
// hash instead of the plain value.
func HashSecret(secret string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(secret))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyAdminSecret checks a supplied secret against the configured one,
// which may be either an argon2-encoded hash or the plain value.
func VerifyAdminSecret(configured, supplied string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$argon2") {
		ok, err := argon2.VerifyEncoded([]byte(supplied), []byte(configured))
		return err == nil && ok
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
