package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// selectBookings выборка бронирований вместе с вещью и арендатором
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.start_time",
		"b.end_time",
		"b.status",
		"i.id",
		"i.name",
		"i.owner_id",
		"u.id",
		"u.name",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("start_time", "end_time", "item_id", "booker_id", "status").
		Values(booking.Start, booking.End, booking.Item.ID, booking.Booker.ID, booking.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID без блокировки строки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, "GetByID", id, false)
}

// GetByIDForUpdate получает бронирование по ID и блокирует его строку (FOR UPDATE OF b)
// Вызывается только внутри транзакции на запись, в READ ONLY транзакции PostgreSQL такой запрос отклоняет
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, "GetByIDForUpdate", id, true)
}

func (r *Repository) getByID(ctx context.Context, method string, id int64, lock bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings().Where(squirrel.Eq{"b.id": id})
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	return booking, nil
}

// GetWithFilter получает бронирования по фильтру
// Сортировка всегда по началу бронирования (DESC), Limit = 0 означает выборку без ограничения
//
// Примеры использования:
//
// 1. Текущие бронирования арендатора:
//    filter := domain.BookingsFilter{BookerID: &userID}
//    domain.StateCurrent.Apply(&filter, now)
//
// 2. Ожидающие решения бронирования вещей владельца, вторая страница по 10:
//    filter := domain.BookingsFilter{OwnerID: &ownerID, Offset: 10, Limit: 10}
//    domain.StateWaiting.Apply(&filter, now)
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings()

	if filter.BookerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.booker_id": *filter.BookerID})
	}
	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"i.owner_id": *filter.OwnerID})
	}
	if filter.ItemID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.item_id": *filter.ItemID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	// Временные границы строгие
	if filter.StartBefore != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.start_time": *filter.StartBefore})
	}
	if filter.StartAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.start_time": *filter.StartAfter})
	}
	if filter.EndBefore != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.end_time": *filter.EndBefore})
	}
	if filter.EndAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.end_time": *filter.EndAfter})
	}

	selectBuilder = selectBuilder.OrderBy("b.start_time DESC", "b.id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetLastApproved последнее подтверждённое бронирование вещи, начавшееся до now
// Возвращает nil, если такого нет
func (r *Repository) GetLastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.BookingRef, error) {
	return r.getApprovedRef(ctx, "GetLastApproved",
		psqlbuilder.Select("id", "booker_id").
			From("bookings").
			Where(squirrel.Eq{"item_id": itemID, "status": domain.StatusApproved}).
			Where(squirrel.Lt{"start_time": now}).
			OrderBy("start_time DESC").
			Limit(1),
	)
}

// GetNextApproved ближайшее подтверждённое бронирование вещи, начинающееся после now
// Возвращает nil, если такого нет
func (r *Repository) GetNextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.BookingRef, error) {
	return r.getApprovedRef(ctx, "GetNextApproved",
		psqlbuilder.Select("id", "booker_id").
			From("bookings").
			Where(squirrel.Eq{"item_id": itemID, "status": domain.StatusApproved}).
			Where(squirrel.Gt{"start_time": now}).
			OrderBy("start_time ASC").
			Limit(1),
	)
}

func (r *Repository) getApprovedRef(ctx context.Context, method string, builder squirrel.SelectBuilder) (*domain.BookingRef, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var ref domain.BookingRef
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ref.ID, &ref.BookerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	return &ref, nil
}

// HasFinishedApproved проверяет, что у пользователя есть завершившееся до now
// подтверждённое бронирование вещи
func (r *Repository) HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("bookings").
		Where(squirrel.Eq{"booker_id": bookerID, "item_id": itemID, "status": domain.StatusApproved}).
		Where(squirrel.Lt{"end_time": now}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasFinishedApproved - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasFinishedApproved - scan result: %v", ErrScanRow, err)
	}

	return exists, nil
}

// UpdateStatus меняет статус, только если текущий статус равен expected
// Если строка изменилась или исчезла, возвращает ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id int64, expected, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.Start,
		&booking.End,
		&booking.Status,
		&booking.Item.ID,
		&booking.Item.Name,
		&booking.Item.OwnerID,
		&booking.Booker.ID,
		&booking.Booker.Name,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
