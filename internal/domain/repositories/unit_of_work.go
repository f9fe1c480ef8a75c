package repositories

import (
	"context"
)

// UnitOfWork executes multi-statement aggregate writes atomically. The
// relational implementation opens a transaction and injects it into the
// context; the file store implementation is pass-through since blob writes
// are already atomic.
type UnitOfWork interface {
	// Do runs fn within a transaction scope, rolling back on error.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
