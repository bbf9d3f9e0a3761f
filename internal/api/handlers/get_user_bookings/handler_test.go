package get_user_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) ListForBooker(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	args := m.Called(ctx, req)
	if list := args.Get(0); list != nil {
		return list.([]models.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, userID int64, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/bookings"+query, nil)
	if userID > 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestHandle_DefaultsApplied(t *testing.T) {
	svc := &mockBookingService{}
	svc.On("ListForBooker", mock.Anything, &models.ListBookingsRequest{UserID: 7, State: "ALL", From: 0, Size: 10}).
		Return([]models.BookingResponse{{ID: 1, Status: "WAITING"}}, nil)

	w := serve(NewHandler(svc, 10, logger.Nop()), 7, "")

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	svc.AssertExpectations(t)
}

func TestHandle_QueryPassedThrough(t *testing.T) {
	svc := &mockBookingService{}
	svc.On("ListForBooker", mock.Anything, &models.ListBookingsRequest{UserID: 7, State: "FUTURE", From: 4, Size: 2}).
		Return([]models.BookingResponse{}, nil)

	w := serve(NewHandler(svc, 10, logger.Nop()), 7, "?state=FUTURE&from=4&size=2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_UnsupportedStateBeatsPagination(t *testing.T) {
	svc := &mockBookingService{}

	w := serve(NewHandler(svc, 10, logger.Nop()), 7, "?state=UNSUPPORTED_STATUS&from=-1&size=0")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", errorMessage(t, w))
	svc.AssertNotCalled(t, "ListForBooker", mock.Anything, mock.Anything)
}

func TestHandle_InvalidPagination(t *testing.T) {
	for _, query := range []string{"?from=-1", "?size=-5", "?from=abc"} {
		t.Run(query, func(t *testing.T) {
			svc := &mockBookingService{}
			w := serve(NewHandler(svc, 10, logger.Nop()), 7, query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, msgInvalidPage, errorMessage(t, w))
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown user", fmt.Errorf("%w: bookings: user not found", domain.ErrNotFound), http.StatusNotFound},
		{"from and size zero", fmt.Errorf("%w: bookings: empty page", domain.ErrValidation), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("%w: bookings: db down", domain.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{}
			svc.On("ListForBooker", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(NewHandler(svc, 10, logger.Nop()), 7, "")

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandle_MissingUser(t *testing.T) {
	w := serve(NewHandler(&mockBookingService{}, 10, logger.Nop()), 0, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
