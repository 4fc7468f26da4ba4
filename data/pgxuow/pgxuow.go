// Package pgxuow implements data.UnitOfWork and data.Transactor on top of
// PostgreSQL using pgx.
package pgxuow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvaleed/kernel/data"
	"github.com/mvaleed/kernel/domain"
)

var (
	_ data.UnitOfWork = (*UnitOfWork)(nil)
	_ data.Transactor = (*UnitOfWork)(nil)
)

// DBTX is the interface satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
// This allows repositories to work with or without an active transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner is a DBTX that can start transactions, such as *pgxpool.Pool.
type Beginner interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// UnitOfWork stages writes in a transaction that is begun on first use and
// ended by Commit or Rollback. A UnitOfWork belongs to one operation; open a
// new one per request rather than sharing it, since every caller would write
// into the same transaction.
type UnitOfWork struct {
	db Beginner

	mu sync.Mutex
	tx pgx.Tx
}

// New returns a UnitOfWork over db.
func New(db Beginner) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// txKey is the context key for a transaction started by WithTransaction.
type txKey struct{}

// DB returns the transaction bound to ctx by WithTransaction, else the
// unit's active transaction, else the underlying connection.
func (u *UnitOfWork) DB(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Tx returns the active transaction, beginning one if needed.
func (u *UnitOfWork) Tx(ctx context.Context) (DBTX, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.tx != nil {
		return u.tx, nil
	}
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	u.tx = tx
	return tx, nil
}

// Commit commits the active transaction. Without one it is a no-op.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := u.take()
	if tx == nil {
		return nil
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", MapError(err))
	}
	return nil
}

// Rollback discards the active transaction. Without one it is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := u.take()
	if tx == nil {
		return nil
	}
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rolling back transaction: %w", err)
	}
	return nil
}

func (u *UnitOfWork) take() pgx.Tx {
	u.mu.Lock()
	defer u.mu.Unlock()
	tx := u.tx
	u.tx = nil
	return tx
}

// WithTransaction implements data.Transactor.
// It executes the given function within its own database transaction,
// reachable from fn through DB(ctx).
func (u *UnitOfWork) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", MapError(err))
	}

	return nil
}

// Error code constants for PostgreSQL
const (
	uniqueViolationCode  = "23505"
	foreignKeyViolation  = "23503"
	serializationFailure = "40001"
)

// MapError converts PostgreSQL errors to domain errors.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case serializationFailure:
			return domain.ErrConcurrentModification
		}
	}

	return err
}
