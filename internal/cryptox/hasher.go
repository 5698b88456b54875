// Package cryptox holds the password digest functions used by the server.
// Every Hasher here is deterministic: the same plaintext always yields the
// same digest, so stored digests can be matched with a plain equality lookup.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Hasher turns a plaintext password into the digest stored for a user.
type Hasher interface {
	Digest(plaintext string) string
}

// SHA256Hasher produces the lowercase hex SHA-256 of the password.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

func (h *SHA256Hasher) Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Argon2 parameters. Changing any of them invalidates every stored digest.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// Argon2Hasher derives an argon2id key from the password, using the
// deployment pepper as salt, and hex-encodes it.
type Argon2Hasher struct {
	pepper []byte
}

func NewArgon2Hasher(pepper string) *Argon2Hasher {
	return &Argon2Hasher{pepper: []byte(pepper)}
}

func (h *Argon2Hasher) Digest(plaintext string) string {
	key := argon2.IDKey([]byte(plaintext), h.pepper, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return hex.EncodeToString(key)
}

// NewHasher returns the Hasher registered under name ("sha256" or "argon2id").
// Unknown names fall back to SHA-256.
func NewHasher(name, pepper string) Hasher {
	if name == "argon2id" {
		return NewArgon2Hasher(pepper)
	}
	return NewSHA256Hasher()
}
