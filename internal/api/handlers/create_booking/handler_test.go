package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, userID int64, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
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

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 11, 1, 10, 0, 0, 0, time.Local)
	end := start.Add(48 * time.Hour)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.BookerID == 2 && req.ItemID == 5 &&
			req.Start != nil && req.Start.Equal(start) &&
			req.End != nil && req.End.Equal(end)
	})).Return(&createBooking.Response{
		ID: 9, Start: start, End: end, Status: "WAITING",
		ItemID: 5, ItemName: "Палатка", BookerID: 2, BookerName: "Вера",
	}, nil)

	w := serve(NewHandler(uc, logger.Nop()), 2,
		`{"itemId":5,"start":"2026-11-01T10:00:00","end":"2026-11-03T10:00:00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id":9,"start":"2026-11-01T10:00:00","end":"2026-11-03T10:00:00","status":"WAITING",
		"booker":{"id":2,"name":"Вера"},"item":{"id":5,"name":"Палатка"}
	}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_MissingDatesForwardedAsNil(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Start == nil && req.End == nil
	})).Return(nil, createBooking.ErrStartRequired)

	w := serve(NewHandler(uc, logger.Nop()), 2, `{"itemId":5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgStartRequired, errorMessage(t, w))
	uc.AssertExpectations(t)
}

func TestHandle_BadRequestBeforeUseCase(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"date with zone", `{"itemId":5,"start":"2026-11-01T10:00:00Z","end":"2026-11-03T10:00:00"}`, msgInvalidDateTime},
		{"date only", `{"itemId":5,"start":"2026-11-01","end":"2026-11-03T10:00:00"}`, msgInvalidDateTime},
		{"bad end", `{"itemId":5,"start":"2026-11-01T10:00:00","end":"завтра"}`, msgInvalidDateTime},
		{"no item", `{"start":"2026-11-01T10:00:00","end":"2026-11-03T10:00:00"}`, msgInvalidItemID},
		{"broken json", `{"itemId":`, msgInvalidRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := serve(NewHandler(uc, logger.Nop()), 2, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, errorMessage(t, w))
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"end in past", createBooking.ErrEndInPast, http.StatusBadRequest, msgEndInPast},
		{"end before start", createBooking.ErrEndBeforeStart, http.StatusBadRequest, msgEndBeforeStart},
		{"empty interval", createBooking.ErrEmptyInterval, http.StatusBadRequest, msgEmptyInterval},
		{"start in past", createBooking.ErrStartInPast, http.StatusBadRequest, msgStartInPast},
		{"unavailable", createBooking.ErrItemUnavailable, http.StatusBadRequest, msgItemUnavailable},
		{"unknown item", createBooking.ErrItemNotFound, http.StatusNotFound, msgItemNotFound},
		{"own item", createBooking.ErrOwnItem, http.StatusNotFound, msgOwnItem},
		{"unknown booker", createBooking.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
		{"storage failure", fmt.Errorf("%w: db down", createBooking.ErrInternal), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(NewHandler(uc, logger.Nop()), 2,
				`{"itemId":5,"start":"2026-11-01T10:00:00","end":"2026-11-03T10:00:00"}`)

			assert.Equal(t, tt.code, w.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, errorMessage(t, w))
			}
		})
	}
}

func TestHandle_MissingUser(t *testing.T) {
	w := serve(NewHandler(&mockUseCase{}, logger.Nop()), 0, `{"itemId":5}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
