package get_all_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidPage   = "параметры from и size должны быть неотрицательными"
)

type Handler struct {
	service  RequestService
	pageSize int
	logger   Logger
}

func NewHandler(service RequestService, pageSize int, logger Logger) *Handler {
	return &Handler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Handle GET /requests/all?from=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests/all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	page, err := handlers.ParsePage(r, h.pageSize)
	if err != nil {
		h.logger.Warn("GET /requests/all - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.service.GetAll(r.Context(), userID, page.From, page.Size)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /requests/all - Invalid pagination: from=%d, size=%d", page.From, page.Size)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		h.logger.Error("GET /requests/all - Failed to get requests: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requests/all - Requests retrieved successfully: user_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
