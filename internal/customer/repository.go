package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/mvaleed/kernel/data"
)

// Repository persists customers. Writes become durable on
// UnitOfWork().Commit; Close discards whatever was not committed.
// A Repository belongs to a single operation.
type Repository interface {
	data.Repository[*Customer]

	// Add stages c. Returns ErrAlreadyExists if the email is taken.
	Add(ctx context.Context, c *Customer) error

	// Get retrieves a customer by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*Customer, error)

	// GetByEmail retrieves a customer by email. Returns ErrNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*Customer, error)
}

// Store hands out repositories. Each call to Open returns a repository with
// its own unit of work, so concurrent operations never see or discard each
// other's staged writes.
type Store interface {
	Open() Repository
}
