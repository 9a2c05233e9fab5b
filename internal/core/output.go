package core

import (
	"context"
	"errors"
)

// ErrOutputNotFound is returned by stores for unknown ids.
var ErrOutputNotFound = errors.New("output not found")

// OutputStore persists rendered PNG cards.
type OutputStore interface {
	// Save stores data and returns its new id.
	Save(ctx context.Context, data []byte) (string, error)

	// Get returns the PNG stored under id.
	Get(ctx context.Context, id string) ([]byte, error)
}
