package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mvaleed/kernel/data"
	"github.com/mvaleed/kernel/data/pgxuow"
)

// Schema creates the customers table used by PostgresRepository.
const Schema = `
CREATE TABLE IF NOT EXISTS customers (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	age           INTEGER NOT NULL,
	license       BOOLEAN NOT NULL,
	registered_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore opens repositories over a connection pool. Every repository
// runs in its own transaction.
type PostgresStore struct {
	db pgxuow.Beginner
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db pgxuow.Beginner) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Open() Repository {
	return NewPostgresRepository(pgxuow.New(s.db))
}

// Migrate creates the schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	uow := pgxuow.New(s.db)
	var tx data.Transactor = uow
	return tx.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := uow.DB(ctx).Exec(ctx, Schema)
		return err
	})
}

// PostgresRepository implements Repository using PostgreSQL. Writes run in
// the unit of work's transaction.
type PostgresRepository struct {
	uow *pgxuow.UnitOfWork
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository writing through uow.
func NewPostgresRepository(uow *pgxuow.UnitOfWork) *PostgresRepository {
	return &PostgresRepository{uow: uow}
}

// Add stages a new customer.
func (r *PostgresRepository) Add(ctx context.Context, c *Customer) error {
	db, err := r.uow.Tx(ctx)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO customers (id, name, email, age, license, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID,
		c.Name,
		c.Email,
		c.Age,
		c.License,
		c.RegisteredAt,
	)

	return pgxuow.MapError(err)
}

// Get retrieves a customer by their ID.
func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	row := r.uow.DB(ctx).QueryRow(ctx, `
		SELECT id, name, email, age, license, registered_at
		FROM customers WHERE id = $1`, id)

	return scanCustomer(row)
}

// GetByEmail retrieves a customer by their email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	row := r.uow.DB(ctx).QueryRow(ctx, `
		SELECT id, name, email, age, license, registered_at
		FROM customers WHERE LOWER(email) = LOWER($1)`, email)

	return scanCustomer(row)
}

func (r *PostgresRepository) UnitOfWork() data.UnitOfWork {
	return r.uow
}

// Close rolls back any uncommitted work.
func (r *PostgresRepository) Close() error {
	return r.uow.Rollback(context.Background())
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Age,
		&c.License,
		&c.RegisteredAt,
	)
	if err != nil {
		return nil, pgxuow.MapError(err)
	}
	return &c, nil
}
