package update_item

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/internal/service/items"
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

type fixture struct {
	router  *mux.Router
	ownerID int64
	otherID int64
	itemID  int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	owner, err := store.Users().Create(ctx, &domain.User{Name: "Олег", Email: "oleg@example.com"})
	require.NoError(t, err)
	other, err := store.Users().Create(ctx, &domain.User{Name: "Вера", Email: "vera@example.com"})
	require.NoError(t, err)
	item, err := store.Items().Create(ctx, &domain.Item{
		Name: "Дрель", Description: "Аккумуляторная дрель", Available: true, OwnerID: owner.ID,
	})
	require.NoError(t, err)

	svc := items.NewService(store.Items(), store.Users(), store.Bookings(), store.Comments(), store.Requests(), logger.Nop())
	h := NewHandler(svc, logger.Nop())

	r := mux.NewRouter()
	r.Handle("/items/{itemId}", middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodPatch)

	return &fixture{router: r, ownerID: owner.ID, otherID: other.ID, itemID: item.ID}
}

func (f *fixture) patch(userID int64, itemID int64, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/items/"+strconv.FormatInt(itemID, 10), strings.NewReader(body))
	if userID > 0 {
		r.Header.Set(domain.UserIDHeader, strconv.FormatInt(userID, 10))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	return w
}

func TestHandle_ExtraFieldsIgnored(t *testing.T) {
	f := newFixture(t)

	w := f.patch(f.ownerID, f.itemID, `{"id":1,"name":"Дрель+","ownerId":99}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Дрель+", got.Name)
	assert.Equal(t, "Аккумуляторная дрель", got.Description)
	assert.True(t, got.Available)
	assert.Equal(t, f.ownerID, got.OwnerID)
}

func TestHandle_PartialUpdate(t *testing.T) {
	f := newFixture(t)

	w := f.patch(f.ownerID, f.itemID, `{"available":false}`)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Дрель", got.Name)
	assert.False(t, got.Available)
}

func TestHandle_Rejections(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		userID int64
		itemID int64
		body   string
		code   int
	}{
		{"not owner", f.otherID, f.itemID, `{"name":"чужая"}`, http.StatusNotFound},
		{"unknown item", f.ownerID, f.itemID + 100, `{"name":"нет"}`, http.StatusNotFound},
		{"blank name", f.ownerID, f.itemID, `{"name":"  "}`, http.StatusBadRequest},
		{"broken json", f.ownerID, f.itemID, `{"name":`, http.StatusBadRequest},
		{"no user header", 0, f.itemID, `{"name":"x"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.patch(tt.userID, tt.itemID, tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
