// Package util provides utility functions for the stock ledger.
package util

import "github.com/google/uuid"

// NewID returns a fresh RFC4122 v4 UUID string for entity identifiers.
func NewID() string {
	return uuid.NewString()
}
