package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	name string
}

func (f *fakeExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

type fakeTx struct {
	fakeExecutor
}

func (f *fakeTx) Commit() error   { return nil }
func (f *fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	def := &fakeExecutor{name: "db"}
	tx := &fakeTx{fakeExecutor{name: "tx"}}

	ctx := context.Background()
	assert.Same(t, def, GetExecutor(ctx, def))
	assert.False(t, IsInTransaction(ctx))

	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, def))
	assert.True(t, IsInTransaction(txCtx))
}

func TestOperationName(t *testing.T) {
	cases := map[string]string{
		"SELECT id FROM courts":           "select",
		"  insert into reservations (id)": "insert",
		"UPDATE users SET balance = $1":   "update",
		"":                                "unknown",
		"COMMIT":                          "commit",
	}
	for query, want := range cases {
		assert.Equal(t, want, operationName(query), query)
	}
}
