package edit_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidApproved  = "параметр approved должен быть true или false"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgAlreadyApproved  = "бронирование уже подтверждено"
	msgNotFound         = "бронирование не найдено"
	msgUserNotFound     = "пользователь не найден"
	msgStatusConflict   = "статус бронирования изменился, повторите запрос"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /bookings/{bookingId}?approved=true|false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid approved parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApproved)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{bookingId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.EditStatus(r.Context(), bookingID, userID, approved)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAlreadyApproved):
			h.logger.Warn("PATCH /bookings/{bookingId} - Already approved: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyApproved)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, domain.ErrNotFound):
			// Чужое бронирование отдаётся как "не найдено"
			h.logger.Warn("PATCH /bookings/{bookingId} - Booking not found or not owned: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PATCH /bookings/{bookingId} - Concurrent status change: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgStatusConflict)

		default:
			h.logger.Error("PATCH /bookings/{bookingId} - Failed to edit status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId} - Status updated: booking_id=%d, status=%s", bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
