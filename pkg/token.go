package pkg

import "github.com/google/uuid"

// NewAccessToken returns the opaque token handed to a user when their
// payment is confirmed. uuid.NewString is backed by crypto/rand, so
// tokens are unpredictable and unique per grant.
func NewAccessToken() string {
	return uuid.NewString()
}
