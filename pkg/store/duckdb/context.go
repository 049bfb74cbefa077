package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

type txKey struct{}

func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTransaction returns the transaction stored by WithTransaction, or nil.
func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// InTransaction runs fn with a context carrying a new transaction. The
// transaction is committed when fn returns nil and rolled back otherwise.
func InTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(WithTransaction(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rbErr).Msg("failed to roll back transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
