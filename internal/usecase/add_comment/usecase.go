package add_comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

// UseCase use case для добавления отзыва о вещи
type UseCase struct {
	commentRepo  CommentRepository
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	commentRepo CommentRepository,
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		commentRepo:  commentRepo,
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute добавляет отзыв
// Оставить отзыв может только тот, чья подтверждённая аренда вещи уже закончилась
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddComment: item=%d, author=%d", req.ItemID, req.AuthorID)

	if strings.TrimSpace(req.Text) == "" {
		uc.logger.Warn("AddComment: blank text from user=%d", req.AuthorID)
		return nil, ErrEmptyText
	}

	now := uc.timeProvider.Now()

	rented, err := uc.bookingRepo.HasFinishedApproved(ctx, req.AuthorID, req.ItemID, now)
	if err != nil {
		uc.logger.Error("AddComment: failed to check bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to check bookings: %v", ErrInternal, err)
	}
	if !rented {
		uc.logger.Warn("AddComment: user=%d has no finished approved booking of item=%d", req.AuthorID, req.ItemID)
		return nil, ErrNotPastBooker
	}

	author, err := uc.userRepo.GetByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("AddComment: user id=%d not found", req.AuthorID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("AddComment: failed to get user id=%d: %v", req.AuthorID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if _, err := uc.itemRepo.GetByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("AddComment: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("AddComment: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	created, err := uc.commentRepo.Create(ctx, &domain.Comment{
		Text:       req.Text,
		ItemID:     req.ItemID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	})
	if err != nil {
		uc.logger.Error("AddComment: failed to create comment: %v", err)
		return nil, fmt.Errorf("%w: failed to create comment: %v", ErrInternal, err)
	}

	uc.logger.Info("AddComment: successfully created comment id=%d", created.ID)

	return &Response{
		ID:         created.ID,
		Text:       created.Text,
		ItemID:     created.ItemID,
		AuthorName: author.Name,
		Created:    created.Created,
	}, nil
}
