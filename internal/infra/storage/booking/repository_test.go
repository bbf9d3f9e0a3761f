package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
)

const selectPrefix = "SELECT b.id, b.start_time, b.end_time, b.status, i.id, i.name, i.owner_id, u.id, u.name " +
	"FROM bookings b JOIN items i ON i.id = b.item_id JOIN users u ON u.id = b.booker_id"

var (
	columns = []string{"id", "start_time", "end_time", "status", "item_id", "item_name", "owner_id", "booker_id", "booker_name"}
	now     = time.Date(2030, 5, 10, 12, 0, 0, 0, time.UTC)
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	start := now.Add(48 * time.Hour)
	end := now.Add(120 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (start_time,end_time,item_id,booker_id,status) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
		WithArgs(start, end, int64(3), int64(1), "WAITING").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		Start:  start,
		End:    end,
		Status: domain.StatusWaiting,
		Item:   domain.BookingItem{ID: 3},
		Booker: domain.BookingUser{ID: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDForUpdate_LocksRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(selectPrefix + " WHERE b.id = $1 FOR UPDATE OF b")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(7, now, now.Add(time.Hour), "WAITING", 3, "Дрель", 2, 1, "Anna"))

	booking, err := repo.GetByIDForUpdate(dbmetrics.WithTx(context.Background(), tx), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaiting, booking.Status)
	assert.Equal(t, int64(2), booking.Item.OwnerID)
	assert.Equal(t, "Anna", booking.Booker.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NoLockInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(context.Background(), &sql.TxOptions{ReadOnly: true})
	require.NoError(t, err)

	mock.ExpectQuery(selectPrefix + " WHERE b.id = $1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(7, now, now.Add(time.Hour), "APPROVED", 3, "Дрель", 2, 1, "Anna"))

	booking, err := repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPrefix + " WHERE b.id = $1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetWithFilter_CurrentStateForBooker(t *testing.T) {
	repo, mock := newRepo(t)
	bookerID := int64(1)

	filter := domain.BookingsFilter{BookerID: &bookerID, Offset: 20, Limit: 10}
	domain.StateCurrent.Apply(&filter, now)

	mock.ExpectQuery(regexp.QuoteMeta(selectPrefix +
		" WHERE b.booker_id = $1 AND b.start_time < $2 AND b.end_time > $3" +
		" ORDER BY b.start_time DESC, b.id DESC LIMIT 10 OFFSET 20")).
		WithArgs(int64(1), now, now).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(5, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED", 3, "Дрель", 2, 1, "Anna"))

	bookings, err := repo.GetWithFilter(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(5), bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_WaitingForOwner(t *testing.T) {
	repo, mock := newRepo(t)
	ownerID := int64(2)

	filter := domain.BookingsFilter{OwnerID: &ownerID}
	domain.StateWaiting.Apply(&filter, now)

	mock.ExpectQuery(regexp.QuoteMeta(selectPrefix +
		" WHERE i.owner_id = $1 AND b.status = $2 ORDER BY b.start_time DESC, b.id DESC")).
		WithArgs(int64(2), "WAITING").
		WillReturnRows(sqlmock.NewRows(columns))

	bookings, err := repo.GetWithFilter(context.Background(), filter)

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_GetLastApproved(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, booker_id FROM bookings WHERE item_id = $1 AND status = $2 AND start_time < $3 ORDER BY start_time DESC LIMIT 1")).
		WithArgs(int64(3), "APPROVED", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booker_id"}).AddRow(4, 1))

	ref, err := repo.GetLastApproved(context.Background(), 3, now)

	require.NoError(t, err)
	assert.Equal(t, &domain.BookingRef{ID: 4, BookerID: 1}, ref)
}

func TestRepository_GetNextApproved_None(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, booker_id FROM bookings WHERE item_id = $1 AND status = $2 AND start_time > $3 ORDER BY start_time ASC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booker_id"}))

	ref, err := repo.GetNextApproved(context.Background(), 3, now)

	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestRepository_HasFinishedApproved(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT EXISTS ( SELECT 1 FROM bookings WHERE booker_id = $1 AND item_id = $2 AND status = $3 AND end_time < $4 )")).
		WithArgs(int64(1), int64(3), "APPROVED", now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.HasFinishedApproved(context.Background(), 1, 3, now)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_UpdateStatus_CompareAndSwap(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3")).
		WithArgs("APPROVED", int64(7), "WAITING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3")).
		WithArgs("APPROVED", int64(7), "WAITING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 7, domain.StatusWaiting, domain.StatusApproved))

	err := repo.UpdateStatus(context.Background(), 7, domain.StatusWaiting, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrStatusChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}
