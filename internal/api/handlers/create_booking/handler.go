package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	createBooking "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidDateTime    = "некорректный формат даты, ожидается YYYY-MM-DDTHH:MM:SS"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStartRequired      = "не указано начало бронирования"
	msgEndRequired        = "не указан конец бронирования"
	msgEndInPast          = "конец бронирования в прошлом"
	msgEndBeforeStart     = "конец бронирования раньше начала"
	msgEmptyInterval      = "начало и конец бронирования совпадают"
	msgStartInPast        = "начало бронирования в прошлом"
	msgItemNotFound       = "вещь не найдена"
	msgOwnItem            = "нельзя забронировать свою вещь"
	msgUserNotFound       = "пользователь не найден"
	msgItemUnavailable    = "вещь недоступна для бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrStartRequired):
			handlers.RespondBadRequest(w, msgStartRequired)
		case errors.Is(err, createBooking.ErrEndRequired):
			handlers.RespondBadRequest(w, msgEndRequired)
		case errors.Is(err, createBooking.ErrEndInPast):
			handlers.RespondBadRequest(w, msgEndInPast)
		case errors.Is(err, createBooking.ErrEndBeforeStart):
			handlers.RespondBadRequest(w, msgEndBeforeStart)
		case errors.Is(err, createBooking.ErrEmptyInterval):
			handlers.RespondBadRequest(w, msgEmptyInterval)
		case errors.Is(err, createBooking.ErrStartInPast):
			handlers.RespondBadRequest(w, msgStartInPast)
		case errors.Is(err, createBooking.ErrItemUnavailable):
			handlers.RespondBadRequest(w, msgItemUnavailable)

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: item_id=%d", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, createBooking.ErrOwnItem):
			h.logger.Warn("POST /bookings - Owner tried to book own item: item_id=%d, user_id=%d", req.ItemID, userID)
			handlers.RespondNotFound(w, msgOwnItem)
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, item_id=%d, error=%v",
				userID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, item_id=%d",
		result.ID, userID, req.ItemID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
