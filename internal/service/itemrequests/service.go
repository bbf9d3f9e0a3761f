package itemrequests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/itemrequest"
	"github.com/m04kA/SMC-ShareItService/internal/service/itemrequests/models"
	"github.com/m04kA/SMC-ShareItService/pkg/ptr"
)

// Service сервис запросов вещей
type Service struct {
	requestRepo  RequestRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса запросов
func NewService(
	requestRepo RequestRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create сохраняет запрос пользователя с текущим временем создания
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateRequestRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: creating request for user=%d", userID)

	description := ptr.Value(req.Description)
	if strings.TrimSpace(description) == "" {
		s.logger.Warn("Create: description is required, user=%d", userID)
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if err := s.ensureUserExists(ctx, "Create", userID); err != nil {
		return nil, err
	}

	created, err := s.requestRepo.Create(ctx, &domain.ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created request id=%d", created.ID)
	return models.FromDomainRequestDetail(&domain.ItemRequestDetail{ItemRequest: *created}), nil
}

// GetByID получает запрос с вещами, созданными в ответ на него
func (s *Service) GetByID(ctx context.Context, requestID, userID int64) (*models.RequestResponse, error) {
	s.logger.Info("GetByID: fetching request id=%d for user=%d", requestID, userID)

	if err := s.ensureUserExists(ctx, "GetByID", userID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resolved, err := s.resolve(ctx, "GetByID", []*domain.ItemRequest{request})
	if err != nil {
		return nil, err
	}

	return &resolved[0], nil
}

// GetOwn запросы пользователя, новые первыми
func (s *Service) GetOwn(ctx context.Context, userID int64) ([]models.RequestResponse, error) {
	s.logger.Info("GetOwn: fetching requests of user=%d", userID)

	if err := s.ensureUserExists(ctx, "GetOwn", userID); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.GetByRequesterID(ctx, userID)
	if err != nil {
		s.logger.Error("GetOwn: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetOwn - repository error: %v", ErrInternal, err)
	}

	return s.resolve(ctx, "GetOwn", requests)
}

// GetAll страница чужих запросов, новые первыми
// from смещение в элементах, size = 0 даёт пустую страницу
func (s *Service) GetAll(ctx context.Context, userID int64, from, size int) ([]models.RequestResponse, error) {
	s.logger.Info("GetAll: user=%d from=%d size=%d", userID, from, size)

	if from < 0 || size < 0 {
		s.logger.Warn("GetAll: invalid pagination from=%d size=%d", from, size)
		return nil, fmt.Errorf("%w: from and size must not be negative", ErrInvalidInput)
	}

	if size == 0 {
		return []models.RequestResponse{}, nil
	}

	requests, err := s.requestRepo.GetOthers(ctx, userID, from, size)
	if err != nil {
		s.logger.Error("GetAll: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return s.resolve(ctx, "GetAll", requests)
}

// resolve подтягивает вещи всех запросов одним обращением к хранилищу
func (s *Service) resolve(ctx context.Context, method string, requests []*domain.ItemRequest) ([]models.RequestResponse, error) {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := s.itemRepo.GetByRequestIDs(ctx, ids)
	if err != nil {
		s.logger.Error("%s: failed to get items for requests: %v", method, err)
		return nil, fmt.Errorf("%w: %s - items: %v", ErrInternal, method, err)
	}

	byRequest := make(map[int64][]domain.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], *it)
		}
	}

	resp := make([]models.RequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, *models.FromDomainRequestDetail(&domain.ItemRequestDetail{
			ItemRequest: *r,
			Items:       byRequest[r.ID],
		}))
	}
	return resp, nil
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
