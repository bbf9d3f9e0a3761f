package itemrequests

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/internal/service/itemrequests/models"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/ptr"
)

type steppingTime struct {
	now time.Time
}

func (s *steppingTime) Now() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

type fixture struct {
	store *memory.Store
	svc   *Service
	alice *domain.User
	bob   *domain.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	alice, err := store.Users().Create(ctx, &domain.User{Name: gofakeit.Name(), Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := store.Users().Create(ctx, &domain.User{Name: gofakeit.Name(), Email: "bob@example.com"})
	require.NoError(t, err)

	svc := NewService(store.Requests(), store.Items(), store.Users(), logger.Nop())
	svc.timeProvider = &steppingTime{now: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)}

	return fixture{store: store, svc: svc, alice: alice, bob: bob}
}

func (f fixture) create(t *testing.T, userID int64, description string) *models.RequestResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), userID, &models.CreateRequestRequest{Description: ptr.Ptr(description)})
	require.NoError(t, err)
	return resp
}

func TestService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp := f.create(t, f.alice.ID, "Нужна дрель")
	assert.Equal(t, "Нужна дрель", resp.Description)
	assert.Equal(t, f.alice.ID, resp.RequesterID)
	assert.NotEmpty(t, resp.Created)
	assert.Empty(t, resp.Items)

	_, err := f.svc.Create(ctx, f.alice.ID, &models.CreateRequestRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Create(ctx, 999, &models.CreateRequestRequest{Description: ptr.Ptr("Нужна пила")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_GetByID_ResolvesItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.create(t, f.alice.ID, "Нужна дрель")

	_, err := f.store.Items().Create(ctx, &domain.Item{Name: "Дрель", Description: "Ударная", Available: true, OwnerID: f.bob.ID, RequestID: ptr.Ptr(req.ID)})
	require.NoError(t, err)
	_, err = f.store.Items().Create(ctx, &domain.Item{Name: "Пила", Description: "Без запроса", Available: true, OwnerID: f.bob.ID})
	require.NoError(t, err)

	got, err := f.svc.GetByID(ctx, req.ID, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Дрель", got.Items[0].Name)
	assert.Equal(t, req.ID, got.Items[0].RequestID)
	assert.Equal(t, f.bob.ID, got.Items[0].OwnerID)

	_, err = f.svc.GetByID(ctx, 999, f.bob.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = f.svc.GetByID(ctx, req.ID, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_GetOwn_NewestFirst(t *testing.T) {
	f := newFixture(t)
	first := f.create(t, f.alice.ID, "Первый")
	second := f.create(t, f.alice.ID, "Второй")
	f.create(t, f.bob.ID, "Чужой")

	own, err := f.svc.GetOwn(context.Background(), f.alice.ID)

	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, second.ID, own[0].ID)
	assert.Equal(t, first.ID, own[1].ID)
}

func TestService_GetAll_ExcludesOwnAndPages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var bobs []int64
	for i := 0; i < 5; i++ {
		bobs = append(bobs, f.create(t, f.bob.ID, gofakeit.Sentence(4)).ID)
		f.create(t, f.alice.ID, gofakeit.Sentence(4))
	}

	page, err := f.svc.GetAll(ctx, f.alice.ID, 1, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, []int64{bobs[3], bobs[2], bobs[1]}, []int64{page[0].ID, page[1].ID, page[2].ID})
	for _, r := range page {
		assert.Equal(t, f.bob.ID, r.RequesterID)
	}

	empty, err := f.svc.GetAll(ctx, f.alice.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.svc.GetAll(ctx, f.alice.ID, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
