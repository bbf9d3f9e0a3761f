package add_comment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	addComment "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
)

const (
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEmptyText          = "текст отзыва не может быть пустым"
	msgNotPastBooker      = "оставить отзыв можно только после завершённой аренды вещи"
	msgItemNotFound       = "вещь не найдена"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase AddCommentUseCase
	logger  Logger
}

func NewHandler(useCase AddCommentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /items/{itemId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("POST /items/{itemId}/comment - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items/{itemId}/comment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items/{itemId}/comment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addComment.Request{ItemID: itemID, AuthorID: userID, Text: req.Text})
	if err != nil {
		switch {
		case errors.Is(err, addComment.ErrEmptyText):
			h.logger.Warn("POST /items/{itemId}/comment - Empty text: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgEmptyText)

		case errors.Is(err, addComment.ErrNotPastBooker):
			h.logger.Warn("POST /items/{itemId}/comment - Not a past booker: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgNotPastBooker)

		case errors.Is(err, addComment.ErrItemNotFound):
			h.logger.Warn("POST /items/{itemId}/comment - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /items/{itemId}/comment - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /items/{itemId}/comment - Failed to add comment: item_id=%d, user_id=%d, error=%v",
				itemID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{itemId}/comment - Comment added successfully: comment_id=%d, item_id=%d", result.ID, itemID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
