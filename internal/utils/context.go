// Package utils provides general-purpose helpers used across the mirror:
// context keys, id generation and HTTP client initialisation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ChainIDCtxKey is the key under which the id of the running sync chain is
// stored in the context.
var ChainIDCtxKey = contextKey("chainID")

// WithChainID returns a copy of ctx carrying chainID.
func WithChainID(ctx context.Context, chainID string) context.Context {
	return context.WithValue(ctx, ChainIDCtxKey, chainID)
}

// GetChainIDFromContext retrieves the sync chain id from the context.
//
// Returns the id and an ok flag:
//   - ok == true: value is found and is a string
//   - ok == false: value is missing or has an unexpected type
func GetChainIDFromContext(ctx context.Context) (string, bool) {
	chainID, ok := ctx.Value(ChainIDCtxKey).(string)
	return chainID, ok
}
