// Package cryptox implements the credential hashing used by the account
// store: a one-way digest of the UTF-8 password bytes rendered as lower-case
// hex, plus an opt-in salted variant derived with Argon2id.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the salted scheme.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPassword computes the legacy digest: SHA-256 over the raw password
// bytes, lower-case hex. No per-account salt is involved, so identical
// passwords produce identical digests across accounts; prefer
// HashPasswordSalted for new records.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// HashPasswordSalted derives a 32-byte Argon2id key from the password and
// per-account salt and renders it as lower-case hex.
func HashPasswordSalted(password, salt []byte) string {
	key := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// VerifyDigest compares a stored digest against a candidate in constant
// time. Both values are hex strings produced by one of the hash functions
// above.
func VerifyDigest(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
