package get_item

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

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
	handler  *Handler
	ownerID  int64
	bookerID int64
	itemID   int64
	lastID   int64
	nextID   int64
}

// newFixture вещь с прошедшей и будущей подтверждёнными арендами и одним отзывом
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Now()

	owner, err := store.Users().Create(ctx, &domain.User{Name: "Олег", Email: "oleg@example.com"})
	require.NoError(t, err)
	booker, err := store.Users().Create(ctx, &domain.User{Name: "Вера", Email: "vera@example.com"})
	require.NoError(t, err)
	item, err := store.Items().Create(ctx, &domain.Item{Name: "Палатка", Description: "Двухместная", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)

	book := func(start time.Time) int64 {
		b, err := store.Bookings().Create(ctx, &domain.Booking{
			Start:  start,
			End:    start.Add(24 * time.Hour),
			Status: domain.StatusApproved,
			Item:   domain.BookingItem{ID: item.ID},
			Booker: domain.BookingUser{ID: booker.ID},
		})
		require.NoError(t, err)
		return b.ID
	}
	last := book(now.Add(-72 * time.Hour))
	next := book(now.Add(72 * time.Hour))

	_, err = store.Comments().Create(ctx, &domain.Comment{
		Text: "Не протекает", ItemID: item.ID, AuthorID: booker.ID, Created: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	svc := items.NewService(store.Items(), store.Users(), store.Bookings(), store.Comments(), store.Requests(), logger.Nop())
	return &fixture{
		handler:  NewHandler(svc, logger.Nop()),
		ownerID:  owner.ID,
		bookerID: booker.ID,
		itemID:   item.ID,
		lastID:   last,
		nextID:   next,
	}
}

func (f *fixture) get(userID int64, itemID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/items/"+itemID, nil)
	r = mux.SetURLVars(r, map[string]string{"itemId": itemID})
	r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	w := httptest.NewRecorder()
	f.handler.Handle(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.ItemDetailResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var got models.ItemDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestHandle_OwnerSeesBookings(t *testing.T) {
	f := newFixture(t)

	got := decode(t, f.get(f.ownerID, strconv.FormatInt(f.itemID, 10)))

	require.NotNil(t, got.LastBooking)
	require.NotNil(t, got.NextBooking)
	assert.Equal(t, f.lastID, got.LastBooking.ID)
	assert.Equal(t, f.nextID, got.NextBooking.ID)
	assert.Equal(t, f.bookerID, got.NextBooking.BookerID)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Вера", got.Comments[0].AuthorName)
}

func TestHandle_OthersSeeOnlyComments(t *testing.T) {
	f := newFixture(t)

	got := decode(t, f.get(f.bookerID, strconv.FormatInt(f.itemID, 10)))

	assert.Nil(t, got.LastBooking)
	assert.Nil(t, got.NextBooking)
	assert.Len(t, got.Comments, 1)
}

func TestHandle_Errors(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusNotFound, f.get(f.ownerID, strconv.FormatInt(f.itemID+100, 10)).Code)
	assert.Equal(t, http.StatusBadRequest, f.get(f.ownerID, "drill").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(f.ownerID, "0").Code)
}
