package item

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/ptr"
)

var columns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO items (name,description,available,owner_id,request_id) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
		WithArgs("Дрель", "Ударная дрель", true, int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	item, err := repo.Create(context.Background(), &domain.Item{
		Name:        "Дрель",
		Description: "Ударная дрель",
		Available:   true,
		OwnerID:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, available, owner_id, request_id FROM items WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(10, "Дрель", "Ударная", true, 1, 5))

	item, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Дрель", item.Name)
	assert.Equal(t, ptr.Ptr(int64(5)), item.RequestID)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 10)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRepository_Search(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM items WHERE (available = $1 AND description ILIKE $2) ORDER BY id ASC")).
		WithArgs(true, `%50\%%`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Скидка", "скидка 50%", true, 1, nil))

	items, err := repo.Search(context.Background(), "50%")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].RequestID)
}

func TestRepository_Search_BlankSkipsQuery(t *testing.T) {
	repo, mock := newRepo(t)

	items, err := repo.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByRequestIDs(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE request_id IN ($1,$2) ORDER BY id ASC")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "Лестница", "Стремянка", true, 4, 2))

	items, err := repo.GetByRequestIDs(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), *items[0].RequestID)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &domain.Item{ID: 1, Name: "a", Description: "b"})

	assert.ErrorIs(t, err, ErrItemNotFound)
}
