package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/config"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	commentRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/comment"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/itemrequest"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/migrations"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/metrics"
	"github.com/m04kA/SMC-ShareItService/pkg/txmanager"
)

type userStore interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type itemStore interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	GetByRequestIDs(ctx context.Context, requestIDs []int64) ([]*domain.Item, error)
	Search(ctx context.Context, text string) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}

type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetLastApproved(ctx context.Context, itemID int64, now time.Time) (*domain.BookingRef, error)
	GetNextApproved(ctx context.Context, itemID int64, now time.Time) (*domain.BookingRef, error)
	HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int64, expected, status domain.BookingStatus) error
}

type commentStore interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByItemID(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

type requestStore interface {
	Create(ctx context.Context, request *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error)
	GetOthers(ctx context.Context, userID int64, offset, limit int) ([]*domain.ItemRequest, error)
}

type txRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage набор репозиториев одного драйвера
type storage struct {
	users    userStore
	items    itemStore
	bookings bookingStore
	comments commentStore
	requests requestStore
	tx       txRunner
	shutdown func()
}

func newMemoryStorage() *storage {
	store := memory.NewStore()
	return &storage{
		users:    store.Users(),
		items:    store.Items(),
		bookings: store.Bookings(),
		comments: store.Comments(),
		requests: store.Requests(),
		tx:       store.TxManager(),
		shutdown: func() {},
	}
}

// newPostgresStorage подключается к БД, накатывает миграции и оборачивает соединение метриками
// collector может быть nil
func newPostgresStorage(cfg config.DatabaseConfig, collector *metrics.Metrics, log *logger.Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	if cfg.MigrateOnStart {
		if err := migrations.Up(db, log); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
	}

	stopCh := make(chan struct{})
	var wrapped *dbmetrics.DB
	if collector != nil {
		wrapped = dbmetrics.WrapWithDefault(db, collector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrapped = dbmetrics.Wrap(db, nil)
	}

	return &storage{
		users:    userRepo.NewRepository(wrapped),
		items:    itemRepo.NewRepository(wrapped),
		bookings: bookingRepo.NewRepository(wrapped),
		comments: commentRepo.NewRepository(wrapped),
		requests: requestRepo.NewRepository(wrapped),
		tx:       txmanager.NewTransactionManager(wrapped),
		shutdown: func() {
			close(stopCh)
			db.Close()
		},
	}, nil
}
