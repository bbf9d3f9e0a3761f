package itemrequest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

var requestColumns = []string{"id", "description", "requester_id", "created"}

// Repository репозиторий запросов вещей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запрос и заполняет его ID
func (r *Repository) Create(ctx context.Context, request *domain.ItemRequest) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("item_requests").
		Columns("description", "requester_id", "created").
		Values(request.Description, request.RequesterID, request.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&request.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return request, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("item_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var request domain.ItemRequest
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&request.ID, &request.Description, &request.RequesterID, &request.Created)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return &request, nil
}

// GetByRequesterID получает запросы пользователя, новые первыми
func (r *Repository) GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	return r.list(ctx, "GetByRequesterID",
		psqlbuilder.Select(requestColumns...).
			From("item_requests").
			Where(squirrel.Eq{"requester_id": requesterID}).
			OrderBy("created DESC", "id DESC"),
	)
}

// GetOthers получает страницу чужих запросов, новые первыми
// offset смещение в элементах, limit = 0 означает выборку без ограничения
func (r *Repository) GetOthers(ctx context.Context, userID int64, offset, limit int) ([]*domain.ItemRequest, error) {
	builder := psqlbuilder.Select(requestColumns...).
		From("item_requests").
		Where(squirrel.NotEq{"requester_id": userID}).
		OrderBy("created DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	return r.list(ctx, "GetOthers", builder)
}

func (r *Repository) list(ctx context.Context, method string, builder squirrel.SelectBuilder) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	requests := make([]*domain.ItemRequest, 0)
	for rows.Next() {
		var request domain.ItemRequest
		if err := rows.Scan(&request.ID, &request.Description, &request.RequesterID, &request.Created); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return requests, nil
}
