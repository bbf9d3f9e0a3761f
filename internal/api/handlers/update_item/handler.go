package update_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

const (
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "вещь не найдена"
	msgBlankFields        = "название и описание не могут быть пустыми"
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

// Handle PATCH /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("PATCH /items/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /items/{itemId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /items/{itemId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Update(r.Context(), itemID, userID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Чужая вещь тоже отдаётся как "не найдена"
			h.logger.Warn("PATCH /items/{itemId} - Item not found or not owned: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /items/{itemId} - Invalid input: item_id=%d, %v", itemID, err)
			handlers.RespondBadRequest(w, msgBlankFields)

		default:
			h.logger.Error("PATCH /items/{itemId} - Failed to update item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /items/{itemId} - Item updated successfully: item_id=%d", itemID)
	handlers.RespondJSON(w, http.StatusOK, item)
}
