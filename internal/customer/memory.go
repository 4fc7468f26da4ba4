package customer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mvaleed/kernel/data"
	"github.com/mvaleed/kernel/domain"
)

// MemoryStore keeps committed customers in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]Customer
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{customers: make(map[uuid.UUID]Customer)}
}

// Open returns a repository whose writes stay staged until its unit of work
// commits.
func (s *MemoryStore) Open() Repository {
	return &MemoryRepository{store: s}
}

// emailTaken must be called with s.mu held.
func (s *MemoryStore) emailTaken(email string) bool {
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

// MemoryRepository is one unit of work over a MemoryStore. It is not safe
// for concurrent use.
type MemoryRepository struct {
	store  *MemoryStore
	staged []Customer
	closed bool
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Add(_ context.Context, c *Customer) error {
	if r.closed {
		return data.ErrClosed
	}

	r.store.mu.RLock()
	taken := r.store.emailTaken(c.Email)
	r.store.mu.RUnlock()

	if taken || r.stagedEmail(c.Email) {
		return fmt.Errorf("customer with email %s: %w", c.Email, domain.ErrAlreadyExists)
	}
	r.staged = append(r.staged, snapshot(c))
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.customers {
		if strings.EqualFold(c.Email, email) {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer with email %s: %w", email, domain.ErrNotFound)
}

func (r *MemoryRepository) UnitOfWork() data.UnitOfWork {
	return memoryUnitOfWork{r}
}

// Close discards staged writes. Later calls to Add or Commit fail with
// data.ErrClosed.
func (r *MemoryRepository) Close() error {
	r.staged = nil
	r.closed = true
	return nil
}

func (r *MemoryRepository) stagedEmail(email string) bool {
	for _, c := range r.staged {
		if strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

// commit applies every staged write or none of them. Another unit may have
// committed the same email since it was staged.
func (r *MemoryRepository) commit() error {
	if r.closed {
		return data.ErrClosed
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range r.staged {
		if _, exists := s.customers[c.ID]; exists {
			r.staged = nil
			return fmt.Errorf("customer %s: %w", c.ID, domain.ErrConcurrentModification)
		}
		if s.emailTaken(c.Email) {
			r.staged = nil
			return fmt.Errorf("customer with email %s: %w", c.Email, domain.ErrAlreadyExists)
		}
	}
	for _, c := range r.staged {
		s.customers[c.ID] = c
	}
	r.staged = nil
	return nil
}

type memoryUnitOfWork struct {
	repo *MemoryRepository
}

func (u memoryUnitOfWork) Commit(context.Context) error {
	return u.repo.commit()
}

// snapshot copies c without its pending events.
func snapshot(c *Customer) Customer {
	return Customer{
		AggregateBase: domain.AggregateBase{Entity: c.Entity},
		Profile:       c.Profile,
		RegisteredAt:  c.RegisteredAt,
	}
}
