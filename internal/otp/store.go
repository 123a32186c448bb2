// Package otp manages pending one-time passwords keyed by subscriber number.
//
// Codes live in an expiring keyed store rather than a bare shared map: issuing
// a new code for the same phone overwrites the previous one, and entries fall
// out on their own after the TTL.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 5 * time.Minute

// ErrNotFound is returned when no pending code exists for a phone number.
var ErrNotFound = errors.New("no pending OTP for phone number")

// Store holds pending one-time codes keyed by subscriber number.
type Store interface {
	// Set stores a code, overwriting any pending code for the same phone.
	Set(ctx context.Context, phone, code string) error
	// Get returns the pending code for a phone, or ErrNotFound.
	Get(ctx context.Context, phone string) (string, error)
	// Delete discards the pending code for a phone. Deleting an absent
	// entry is not an error.
	Delete(ctx context.Context, phone string) error
}

// GenerateCode returns a uniformly random 6-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
