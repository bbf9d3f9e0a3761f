package search_items

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/internal/service/items"
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

func serve(h *Handler, text string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/items/search?text="+url.QueryEscape(text), nil)
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func newHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	owner, err := store.Users().Create(ctx, &domain.User{Name: "Олег", Email: "oleg@example.com"})
	require.NoError(t, err)
	for _, it := range []domain.Item{
		{Name: "Дрель", Description: "Ударная ДРЕЛЬ Bosch", Available: true},
		{Name: "Шуруповёрт", Description: "Дрель-шуруповёрт", Available: false},
		{Name: "Палатка", Description: "Двухместная", Available: true},
	} {
		it.OwnerID = owner.ID
		_, err := store.Items().Create(ctx, &it)
		require.NoError(t, err)
	}

	svc := items.NewService(store.Items(), store.Users(), store.Bookings(), store.Comments(), store.Requests(), logger.Nop())
	return NewHandler(svc, logger.Nop())
}

func TestHandle_FindsAvailableCaseInsensitive(t *testing.T) {
	w := serve(newHandler(t), "дрель")

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Дрель", got[0].Name)
}

func TestHandle_BlankTextGivesEmptyArray(t *testing.T) {
	h := newHandler(t)

	for _, text := range []string{"", "   "} {
		w := serve(h, text)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	}
}

type failingService struct {
	mock.Mock
}

func (m *failingService) Search(ctx context.Context, text string) ([]models.ItemResponse, error) {
	args := m.Called(ctx, text)
	return nil, args.Error(1)
}

func TestHandle_ServiceFailure(t *testing.T) {
	svc := &failingService{}
	svc.On("Search", mock.Anything, "дрель").Return(nil, errors.New("db down"))

	w := serve(NewHandler(svc, logger.Nop()), "дрель")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}
