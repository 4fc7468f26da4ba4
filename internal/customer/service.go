package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mvaleed/kernel/behavior"
	"github.com/mvaleed/kernel/internal/event"
)

// Service handles customer registration and lookup. It does not know about
// HTTP, gRPC, or transport details.
type Service struct {
	store     Store
	publisher event.Publisher
	register  behavior.Handler[Profile, *Customer]
}

func NewService(store Store, publisher event.Publisher, logger *slog.Logger) *Service {
	s := &Service{
		store:     store,
		publisher: publisher,
	}
	s.register = behavior.Chain(s.doRegister,
		behavior.Logging[Profile, *Customer](logger),
		behavior.ValidatingStruct[Profile, *Customer](),
		behavior.Validating[Profile, *Customer](Registrable),
	)
	return s
}

// Register validates p, stores the new customer and publishes its events.
// Invalid profiles are rejected with a *result.FailureError.
func (s *Service) Register(ctx context.Context, p Profile) (*Customer, error) {
	return s.register(ctx, p)
}

func (s *Service) doRegister(ctx context.Context, p Profile) (*Customer, error) {
	c := Register(p)

	customers := s.store.Open()
	defer customers.Close()

	if err := customers.Add(ctx, c); err != nil {
		return nil, err
	}
	if err := customers.UnitOfWork().Commit(ctx); err != nil {
		return nil, err
	}

	_ = s.publisher.PublishBatch(ctx, c.PullEvents())

	return c, nil
}

// Get retrieves a customer by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	customers := s.store.Open()
	defer customers.Close()

	return customers.Get(ctx, id)
}
