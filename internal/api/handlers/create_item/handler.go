package create_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/service/items"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "название, описание и доступность обязательны"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgRequestNotFound    = "запрос вещи не найден"
)

type Handler struct {
	service ItemService
	logger  Logger
}

func NewHandler(service ItemService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /items - Validation failed: user_id=%d, %v", userID, err)
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	item, err := h.service.Create(r.Context(), userID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, items.ErrRequestNotFound):
			h.logger.Warn("POST /items - Request not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /items - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /items - Invalid input: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /items - Failed to create item: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items - Item created successfully: item_id=%d, owner_id=%d", item.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
