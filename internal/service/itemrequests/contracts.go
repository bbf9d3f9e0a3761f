package itemrequests

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// RequestRepository интерфейс репозитория запросов вещей
type RequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error)
	GetOthers(ctx context.Context, userID int64, offset, limit int) ([]*domain.ItemRequest, error)
}

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	GetByRequestIDs(ctx context.Context, requestIDs []int64) ([]*domain.Item, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
