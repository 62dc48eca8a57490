package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashClientSecret_Format(t *testing.T) {
	hash := HashClientSecret("super-secret")

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2_sha256", parts[0])
	assert.Equal(t, "260000", parts[1])
	assert.NotEmpty(t, parts[2])
	assert.NotEmpty(t, parts[3])
}

func TestVerifyClientSecret(t *testing.T) {
	hash := HashClientSecret("super-secret")

	assert.True(t, VerifyClientSecret("super-secret", hash))
	assert.False(t, VerifyClientSecret("wrong-secret", hash))
	assert.False(t, VerifyClientSecret("", hash))
}

func TestVerifyClientSecret_MalformedHash(t *testing.T) {
	assert.False(t, VerifyClientSecret("secret", ""))
	assert.False(t, VerifyClientSecret("secret", "plaintext"))
	assert.False(t, VerifyClientSecret("secret", "md5$1$a$b"))
	assert.False(t, VerifyClientSecret("secret", "pbkdf2_sha256$notanumber$a$b"))
	assert.False(t, VerifyClientSecret("secret", "pbkdf2_sha256$1000$!!!$b"))
}

func TestHashClientSecret_UniqueSalt(t *testing.T) {
	first := HashClientSecret("same-secret")
	second := HashClientSecret("same-secret")

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyClientSecret("same-secret", first))
	assert.True(t, VerifyClientSecret("same-secret", second))
}

func TestGenerateClientCredentials(t *testing.T) {
	clientID, clientSecret := GenerateClientCredentials()

	assert.NotEmpty(t, clientID)
	assert.NotEmpty(t, clientSecret)
	assert.NotEqual(t, clientID, clientSecret)
	assert.Greater(t, len(clientSecret), len(clientID))
}
