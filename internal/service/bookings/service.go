package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	txManager    TransactionManager
	recorder     TransitionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// recorder может быть nil, если метрики выключены
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	recorder TransitionRecorder,
	logger Logger,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование могут только арендатор и владелец вещи, остальным оно "не найдено"
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	var booking *domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if err := s.ensureUserExists(ctx, "GetByID", userID); err != nil {
			return err
		}

		var err error
		booking, err = s.get(ctx, "GetByID", id)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !booking.IsVisibleTo(userID) {
		s.logger.Warn("GetByID: user=%d has no access to booking id=%d", userID, id)
		return nil, ErrBookingNotFound
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// EditStatus подтверждает или отклоняет бронирование
// Доступно только владельцу вещи. Повторное подтверждение запрещено, повторное отклонение нет.
// Чтение и запись статуса выполняются в одной транзакции, запись обновляет строку
// только если статус не изменился с момента чтения.
func (s *Service) EditStatus(ctx context.Context, bookingID, ownerID int64, approved bool) (*models.BookingResponse, error) {
	s.logger.Info("EditStatus: booking id=%d approved=%t by user=%d", bookingID, approved, ownerID)

	if err := s.ensureUserExists(ctx, "EditStatus", ownerID); err != nil {
		return nil, err
	}

	var result *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getForUpdate(ctx, "EditStatus", bookingID)
		if err != nil {
			return err
		}

		if booking.IsApproved() {
			s.logger.Warn("EditStatus: booking id=%d already approved", bookingID)
			return ErrAlreadyApproved
		}

		if booking.Item.OwnerID != ownerID {
			s.logger.Warn("EditStatus: user=%d is not owner of item id=%d", ownerID, booking.Item.ID)
			return ErrNotItemOwner
		}

		newStatus := domain.DecisionStatus(approved)
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				s.logger.Warn("EditStatus: booking id=%d status changed concurrently", bookingID)
				return ErrStatusConflict
			}
			s.logger.Error("EditStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: EditStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		result = booking
		return nil
	})
	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		s.logger.Error("EditStatus: transaction error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: EditStatus - transaction error: %v", ErrInternal, err)
	}

	s.recorder.IncBookingTransition(string(result.Status))
	s.logger.Info("EditStatus: booking id=%d moved to status=%s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// ListForBooker бронирования пользователя как арендатора
func (s *Service) ListForBooker(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	return s.list(ctx, "ListForBooker", req, func(f *domain.BookingsFilter) {
		f.BookerID = &req.UserID
	})
}

// ListForOwner бронирования вещей пользователя как владельца
func (s *Service) ListForOwner(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	return s.list(ctx, "ListForOwner", req, func(f *domain.BookingsFilter) {
		f.OwnerID = &req.UserID
	})
}

// list общая выборка: состояние, пагинация, сортировка по началу по убыванию
// Неизвестное состояние отклоняется раньше проверки пагинации
func (s *Service) list(
	ctx context.Context,
	method string,
	req *models.ListBookingsRequest,
	scope func(f *domain.BookingsFilter),
) ([]models.BookingResponse, error) {
	s.logger.Info("%s: user=%d state=%s from=%d size=%d", method, req.UserID, req.State, req.From, req.Size)

	state, err := domain.ParseBookingState(req.State)
	if err != nil {
		s.logger.Warn("%s: unsupported state=%s", method, req.State)
		return nil, err
	}

	page, err := domain.NewPage(req.From, req.Size)
	if err != nil {
		s.logger.Warn("%s: invalid pagination from=%d size=%d", method, req.From, req.Size)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter := domain.BookingsFilter{Offset: page.From, Limit: page.Size}
	scope(&filter)
	state.Apply(&filter, s.timeProvider.Now())

	bookings := []*domain.Booking{}
	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if err := s.ensureUserExists(ctx, method, req.UserID); err != nil {
			return err
		}

		// Лимит 0 в репозитории означает "без ограничения"
		if page.Size == 0 {
			return nil
		}

		var err error
		bookings, err = s.bookingRepo.GetWithFilter(ctx, filter)
		if err != nil {
			s.logger.Error("%s: repository error for user=%d: %v", method, req.UserID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: fetched %d bookings for user=%d", method, len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

func (s *Service) get(ctx context.Context, method string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	return s.checkFetched(method, id, booking, err)
}

func (s *Service) getForUpdate(ctx context.Context, method string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByIDForUpdate(ctx, id)
	return s.checkFetched(method, id, booking, err)
}

func (s *Service) checkFetched(method string, id int64, booking *domain.Booking, err error) (*domain.Booking, error) {
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

func (s *Service) ensureUserExists(ctx context.Context, method string, userID int64) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("%s: repository error for user id=%d: %v", method, userID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	if !exists {
		s.logger.Warn("%s: user id=%d not found", method, userID)
		return ErrUserNotFound
	}
	return nil
}

func isServiceError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrInternal)
}
