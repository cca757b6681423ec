package utils

import "github.com/google/uuid"

// NewSessionToken returns an opaque session identifier. uuid v4 draws from
// crypto/rand, so tokens are unguessable rather than sequential.
func NewSessionToken() string {
	return uuid.NewString()
}
