package trm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx binds tx to ctx so repositories pick it up through ExtractTx.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// InTx reports whether ctx carries a database transaction that rolls back on failure.
func InTx(ctx context.Context) bool {
	return ExtractTx(ctx) != nil
}

type Manager interface {
	// Do runs callback in one atomic unit: commit if it returns nil, rollback otherwise.
	// Nested calls join the outer transaction.
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := callback(WithTx(ctx, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}

type nopManager struct{}

// NewNopManager is used with stores that have no transactions of their own;
// atomicity then relies on compensations recorded by the caller.
func NewNopManager() Manager {
	return nopManager{}
}

func (nopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}
