package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is a Querier that can open transactions.
type Pool interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// txFromCtx returns the ambient transaction, if any.
func txFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns q.
func QuerierFromCtx(ctx context.Context, q Querier) Querier {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return q
}

// InTx reports whether ctx carries a transaction started by TxManager.
func InTx(ctx context.Context) bool {
	_, ok := txFromCtx(ctx)
	return ok
}

// RunAtomic runs fn so that all its statements succeed or fail together.
// Inside an ambient transaction it uses a savepoint, so a failure in fn
// leaves the outer transaction usable; otherwise it opens a transaction on pool.
func RunAtomic(ctx context.Context, pool Pool, fn func(q Querier) error) (err error) {
	var tx pgx.Tx
	if outer, ok := txFromCtx(ctx); ok {
		tx, err = outer.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin savepoint: %w", err)
		}
	} else {
		tx, err = pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
