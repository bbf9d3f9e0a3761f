package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidPage   = "параметры from и size должны быть неотрицательными и не равны нулю одновременно"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	service  BookingService
	pageSize int
	logger   Logger
}

func NewHandler(service BookingService, pageSize int, logger Logger) *Handler {
	return &Handler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Handle GET /bookings/owner?state=&from=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/owner - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Неизвестный state отклоняется раньше проверки пагинации
	state := handlers.QueryString(r, "state", string(domain.StateAll))
	if _, err := domain.ParseBookingState(state); err != nil {
		h.logger.Warn("GET /bookings/owner - Unsupported state: state=%s", state)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	page, err := handlers.ParsePage(r, h.pageSize)
	if err != nil {
		h.logger.Warn("GET /bookings/owner - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.service.ListForOwner(r.Context(), &models.ListBookingsRequest{
		UserID: userID,
		State:  state,
		From:   page.From,
		Size:   page.Size,
	})
	if err != nil {
		if msg, ok := handlers.UnsupportedStateMessage(err); ok {
			h.logger.Warn("GET /bookings/owner - Unsupported state: state=%s", state)
			handlers.RespondBadRequest(w, msg)
			return
		}
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /bookings/owner - Invalid pagination: from=%d, size=%d", page.From, page.Size)
			handlers.RespondBadRequest(w, msgInvalidPage)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("GET /bookings/owner - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /bookings/owner - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/owner - Bookings retrieved successfully: owner=%d, state=%s, count=%d",
		userID, state, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
