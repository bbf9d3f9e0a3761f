package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Новое бронирование всегда создаётся в статусе WAITING
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: booker=%d, item=%d", req.BookerID, req.ItemID)

	// 1. Проверяем интервал относительно текущего времени
	now := uc.timeProvider.Now()
	if err := validateInterval(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение вещи и запись бронирования в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		item, err := uc.itemRepo.GetByID(txCtx, req.ItemID)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("CreateBooking: item id=%d not found", req.ItemID)
				return ErrItemNotFound
			}
			uc.logger.Error("CreateBooking: failed to get item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
		}

		// 2.1. Владелец не бронирует свою вещь
		if item.IsOwnedBy(req.BookerID) {
			uc.logger.Warn("CreateBooking: user=%d tried to book own item id=%d", req.BookerID, item.ID)
			return ErrOwnItem
		}

		// 2.2. Арендатор должен существовать
		booker, err := uc.userRepo.GetByID(txCtx, req.BookerID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user id=%d not found", req.BookerID)
				return ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.BookerID, err)
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 2.3. Вещь должна быть доступна
		if !item.Available {
			uc.logger.Warn("CreateBooking: item id=%d is not available", item.ID)
			return ErrItemUnavailable
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			Start:  *req.Start,
			End:    *req.End,
			Status: domain.StatusWaiting,
			Item:   domain.BookingItem{ID: item.ID, Name: item.Name, OwnerID: item.OwnerID},
			Booker: domain.BookingUser{ID: booker.ID, Name: booker.Name},
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		Start:      result.Start,
		End:        result.End,
		Status:     string(result.Status),
		ItemID:     result.Item.ID,
		ItemName:   result.Item.Name,
		BookerID:   result.Booker.ID,
		BookerName: result.Booker.Name,
	}, nil
}
