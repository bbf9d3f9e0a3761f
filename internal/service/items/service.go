package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/itemrequest"
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

// Service сервис вещей: карточки с ближайшими бронированиями, поиск, изменение
type Service struct {
	itemRepo     ItemRepository
	userRepo     UserRepository
	bookingRepo  BookingRepository
	commentRepo  CommentRepository
	requestRepo  RequestRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса вещей
func NewService(
	itemRepo ItemRepository,
	userRepo UserRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	requestRepo RequestRepository,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		bookingRepo:  bookingRepo,
		commentRepo:  commentRepo,
		requestRepo:  requestRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает вещь владельца ownerID
// Название, описание и флаг доступности обязательны
func (s *Service) Create(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: creating item for owner=%d", ownerID)

	if req.Available == nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		s.logger.Warn("Create: name, description and available are required, owner=%d", ownerID)
		return nil, fmt.Errorf("%w: name, description and available are required", ErrInvalidInput)
	}

	if err := s.ensureUserExists(ctx, "Create", ownerID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("Create: request id=%d not found", *req.RequestID)
				return nil, ErrRequestNotFound
			}
			s.logger.Error("Create: repository error for request id=%d: %v", *req.RequestID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	created, err := s.itemRepo.Create(ctx, &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	})
	if err != nil {
		s.logger.Error("Create: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created item id=%d", created.ID)
	return models.FromDomainItem(created), nil
}

// Update изменяет только переданные поля, доступно только владельцу
func (s *Service) Update(ctx context.Context, itemID, userID int64, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Update: updating item id=%d by user=%d", itemID, userID)

	item, err := s.getOwned(ctx, "Update", itemID, userID)
	if err != nil {
		return nil, err
	}

	patched := req.ToDomainPatch().Apply(*item)
	if strings.TrimSpace(patched.Name) == "" || strings.TrimSpace(patched.Description) == "" {
		s.logger.Warn("Update: blank name or description for item id=%d", itemID)
		return nil, fmt.Errorf("%w: name and description must not be blank", ErrInvalidInput)
	}

	updated, err := s.itemRepo.Update(ctx, &patched)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("Update: item id=%d not found during update", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Update: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated item id=%d", itemID)
	return models.FromDomainItem(updated), nil
}

// Delete удаляет вещь, доступно только владельцу
func (s *Service) Delete(ctx context.Context, itemID, userID int64) error {
	s.logger.Info("Delete: deleting item id=%d by user=%d", itemID, userID)

	if _, err := s.getOwned(ctx, "Delete", itemID, userID); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for item id=%d: %v", itemID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted item id=%d", itemID)
	return nil
}

// GetByID карточка вещи
// Последнее и следующее подтверждённые бронирования видит только владелец
func (s *Service) GetByID(ctx context.Context, itemID, userID int64) (*models.ItemDetailResponse, error) {
	s.logger.Info("GetByID: fetching item id=%d for user=%d", itemID, userID)

	item, err := s.get(ctx, "GetByID", itemID)
	if err != nil {
		return nil, err
	}

	detail, err := s.buildDetail(ctx, item, item.IsOwnedBy(userID))
	if err != nil {
		return nil, err
	}

	return models.FromDomainItemDetail(detail), nil
}

// GetByOwner карточки всех вещей владельца по возрастанию ID
func (s *Service) GetByOwner(ctx context.Context, ownerID int64) ([]models.ItemDetailResponse, error) {
	s.logger.Info("GetByOwner: fetching items of owner=%d", ownerID)

	if err := s.ensureUserExists(ctx, "GetByOwner", ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	resp := make([]models.ItemDetailResponse, 0, len(items))
	for _, item := range items {
		detail, err := s.buildDetail(ctx, item, true)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *models.FromDomainItemDetail(detail))
	}

	s.logger.Info("GetByOwner: fetched %d items of owner=%d", len(resp), ownerID)
	return resp, nil
}

// Search поиск доступных вещей по описанию, пустой запрос даёт пустой список
func (s *Service) Search(ctx context.Context, text string) ([]models.ItemResponse, error) {
	if strings.TrimSpace(text) == "" {
		return []models.ItemResponse{}, nil
	}

	found, err := s.itemRepo.Search(ctx, text)
	if err != nil {
		s.logger.Error("Search: repository error for text=%q: %v", text, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d items for text=%q", len(found), text)
	return models.FromDomainItemList(found), nil
}

// buildDetail собирает карточку вещи, withBookings добавляет last/next бронирования
func (s *Service) buildDetail(ctx context.Context, item *domain.Item, withBookings bool) (*domain.ItemDetail, error) {
	detail := &domain.ItemDetail{Item: *item}

	if withBookings {
		now := s.timeProvider.Now()

		last, err := s.bookingRepo.GetLastApproved(ctx, item.ID, now)
		if err != nil {
			s.logger.Error("buildDetail: failed to get last booking for item id=%d: %v", item.ID, err)
			return nil, fmt.Errorf("%w: buildDetail - last booking: %v", ErrInternal, err)
		}

		next, err := s.bookingRepo.GetNextApproved(ctx, item.ID, now)
		if err != nil {
			s.logger.Error("buildDetail: failed to get next booking for item id=%d: %v", item.ID, err)
			return nil, fmt.Errorf("%w: buildDetail - next booking: %v", ErrInternal, err)
		}

		detail.LastBooking = last
		detail.NextBooking = next
	}

	comments, err := s.commentRepo.GetByItemID(ctx, item.ID)
	if err != nil {
		s.logger.Error("buildDetail: failed to get comments for item id=%d: %v", item.ID, err)
		return nil, fmt.Errorf("%w: buildDetail - comments: %v", ErrInternal, err)
	}
	detail.Comments = comments

	return detail, nil
}

func (s *Service) get(ctx context.Context, method string, itemID int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("%s: item id=%d not found", method, itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("%s: repository error for item id=%d: %v", method, itemID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return item, nil
}

func (s *Service) getOwned(ctx context.Context, method string, itemID, userID int64) (*domain.Item, error) {
	item, err := s.get(ctx, method, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%d is not owner of item id=%d", method, userID, itemID)
		return nil, ErrNotOwner
	}
	return item, nil
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
