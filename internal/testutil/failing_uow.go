package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/smartly/internal/db"
)

// FailingInsertUoW runs the callback in a real transaction but fails the Nth
// INSERT statement with Err. Other statements pass through untouched, so a
// catalog import can be broken halfway to check that nothing is committed.
type FailingInsertUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailingInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingInsertTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingInsertTx struct {
	db.DBTX
	inserts atomic.Int32
	failOn  int32
	err     error
}

func (f *failingInsertTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(strings.ToUpper(query)), "INSERT") {
		if f.inserts.Add(1) == f.failOn {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
