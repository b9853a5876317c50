package auth

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

type HashServiceInterface interface {
	HashPassword(password string) string
	ComparePassword(fingerprint, password string) bool
}

// HashService fingerprints passwords with SHA3-256. The digest is
// deterministic so it can take part in the session lookup key.
type HashService struct{}

func (h *HashService) HashPassword(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (h *HashService) ComparePassword(fingerprint, password string) bool {
	return subtle.ConstantTimeCompare([]byte(fingerprint), []byte(h.HashPassword(password))) == 1
}
