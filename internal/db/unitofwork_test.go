package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertItem(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO content_items (id, content_type, name, created_at) VALUES (?, 'workout', ?, '2025-01-01T00:00:00Z')`,
		id, "item "+id)
	return err
}

// itemExists reads through a fresh transaction; the in-memory pool has a
// single connection.
func itemExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items WHERE id = ?`, id).Scan(&n)
	})
	require.NoError(t, err)
	return n == 1
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertItem(ctx, tx, "k1")
	})
	require.NoError(t, err)
	assert.True(t, itemExists(t, uow, "k1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertItem(ctx, tx, "k2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, itemExists(t, uow, "k2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertItem(ctx, tx, "k3")
			panic("boom")
		})
	})
	assert.False(t, itemExists(t, uow, "k3"))
}

func TestWithinTx_PartialBatchRollsBack(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertItem(ctx, tx, "a"); err != nil {
			return err
		}
		// duplicate primary key
		return insertItem(ctx, tx, "a")
	})
	require.Error(t, err)
	assert.False(t, itemExists(t, uow, "a"))
}
