// Package data defines the persistence contracts used by the application
// layer.
//
// These interfaces allow the business logic to remain independent of the
// storage implementation. Repositories accept aggregate roots only, and every
// change they stage becomes durable through the repository's unit of work.
package data

import (
	"context"
	"errors"
	"io"

	"github.com/mvaleed/kernel/domain"
)

// ErrClosed is returned when a repository or unit of work is used after it
// was closed.
var ErrClosed = errors.New("unit of work is closed")

// UnitOfWork is a transactional boundary committed once per operation.
type UnitOfWork interface {
	// Commit makes the staged changes durable. A nil error means success.
	Commit(ctx context.Context) error
}

// Repository is the base contract for repositories of aggregate roots.
// Concrete repositories add their own query and write methods.
type Repository[T domain.AggregateRoot] interface {
	UnitOfWork() UnitOfWork
	io.Closer
}

// Transactor provides transaction support for operations that need atomicity.
type Transactor interface {
	// WithTransaction executes fn within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn succeeds, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
