package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает пользователя, e-mail должен быть уникальным
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user email=%s", req.Email)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		s.logger.Warn("Create: name and email are required")
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailExists) {
			s.logger.Warn("Create: email=%s already exists", req.Email)
			return nil, ErrEmailExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

// GetAll получает всех пользователей
func (s *Service) GetAll(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// Update обновляет только переданные поля пользователя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	if (req.Name != nil && strings.TrimSpace(*req.Name) == "") || (req.Email != nil && strings.TrimSpace(*req.Email) == "") {
		s.logger.Warn("Update: blank field for user id=%d", id)
		return nil, fmt.Errorf("%w: name and email must not be blank", ErrInvalidInput)
	}

	current, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	patched := req.ToDomainPatch().Apply(*current)

	updated, err := s.userRepo.Update(ctx, &patched)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrEmailExists):
			s.logger.Warn("Update: email=%s already exists", patched.Email)
			return nil, ErrEmailExists
		case errors.Is(err, userRepo.ErrUserNotFound):
			s.logger.Warn("Update: user id=%d not found during update", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated user id=%d", id)
	return models.FromDomainUser(updated), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted user id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, method string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", method, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return user, nil
}
