package dbmetrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderStub struct {
	mu         sync.Mutex
	operations []string
	errors     int
}

func (r *recorderStub) ObserveDBQuery(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, operation)
	if err != nil {
		r.errors++
	}
}

func (r *recorderStub) SetDBPoolStats(int, int, int, int64) {}

func TestDB_RecordsQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	rec := &recorderStub{}
	db := Wrap(sqlDB, rec)

	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM items").WillReturnError(assert.AnError)

	_, err = db.ExecContext(context.Background(), "DELETE FROM users")
	require.NoError(t, err)
	_, err = db.ExecContext(context.Background(), "DELETE FROM items")
	require.Error(t, err)

	assert.Equal(t, []string{"exec", "exec"}, rec.operations)
	assert.Equal(t, 1, rec.errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)

	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, db))

	assert.False(t, IsInTransaction(context.Background()))
	assert.Same(t, db, GetExecutor(context.Background(), db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
}
