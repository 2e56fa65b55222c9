package cryptox

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_StableAndDistinct(t *testing.T) {
	a := HashPassword([]byte("secret123"))
	b := HashPassword([]byte("secret123"))
	c := HashPassword([]byte("secret124"))

	assert.Equal(t, a, b, "same input must produce the same digest")
	assert.NotEqual(t, a, c, "different inputs must produce different digests")
}

func TestHashPassword_LowercaseHex64(t *testing.T) {
	d := HashPassword([]byte("hunter2"))

	require.Len(t, d, 64)
	assert.Equal(t, strings.ToLower(d), d)
	_, err := hex.DecodeString(d)
	require.NoError(t, err)
}

func TestHashPassword_NotThePlaintext(t *testing.T) {
	assert.NotEqual(t, "pw1", HashPassword([]byte("pw1")))
}

func TestHashPasswordSalted_SaltChangesDigest(t *testing.T) {
	pw := []byte("secret123")
	a := HashPasswordSalted(pw, []byte("salt-one-16bytes"))
	b := HashPasswordSalted(pw, []byte("salt-two-16bytes"))

	assert.NotEqual(t, a, b, "different salts must produce different digests")
	assert.Equal(t, a, HashPasswordSalted(pw, []byte("salt-one-16bytes")))
	require.Len(t, a, 64)
}

func TestVerifyDigest(t *testing.T) {
	d := HashPassword([]byte("secret123"))

	assert.True(t, VerifyDigest(d, HashPassword([]byte("secret123"))))
	assert.False(t, VerifyDigest(d, HashPassword([]byte("wrong"))))
	assert.False(t, VerifyDigest(d, ""))
}
