package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Client secrets are stored as pbkdf2_sha256$<iterations>$<salt>$<digest>,
// with salt and digest base64url-encoded without padding.
const (
	secretHashAlgorithm  = "pbkdf2_sha256"
	secretHashIterations = 260000
	secretSaltBytes      = 16
	secretKeyBytes       = 32
)

// HashClientSecret derives a storable hash from a plaintext client secret.
func HashClientSecret(secret string) string {
	salt := make([]byte, secretSaltBytes)
	_, _ = rand.Read(salt)
	digest := pbkdf2.Key([]byte(secret), salt, secretHashIterations, secretKeyBytes, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		secretHashAlgorithm,
		secretHashIterations,
		base64.RawURLEncoding.EncodeToString(salt),
		base64.RawURLEncoding.EncodeToString(digest))
}

// VerifyClientSecret checks a plaintext secret against a stored hash in
// constant time.
func VerifyClientSecret(secret, storedHash string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 4 || parts[0] != secretHashAlgorithm {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return false
	}
	salt, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	want, err := base64.RawURLEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(secret), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// GenerateClientCredentials returns a new random (client id, client secret)
// pair for a service account. The secret is only ever shown once.
func GenerateClientCredentials() (string, string) {
	return randomToken(16), randomToken(32)
}

func randomToken(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
