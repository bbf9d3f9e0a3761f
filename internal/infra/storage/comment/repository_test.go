package comment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

func TestRepository_CreateAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	created := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO comments (text,item_id,author_id,created) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("Отличная дрель", int64(3), int64(1), created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created FROM comments c " +
			"JOIN users u ON u.id = c.author_id WHERE c.item_id = $1 ORDER BY c.created ASC, c.id ASC")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "item_id", "author_id", "name", "created"}).
			AddRow(11, "Отличная дрель", 3, 1, "Anna", created))

	comment, err := repo.Create(context.Background(), &domain.Comment{
		Text:     "Отличная дрель",
		ItemID:   3,
		AuthorID: 1,
		Created:  created,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), comment.ID)

	comments, err := repo.GetByItemID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Anna", comments[0].AuthorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
