package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

var now = time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *Store
	owner *domain.User
	user  *domain.User
	item  *domain.Item
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := NewStore()

	owner, err := store.Users().Create(ctx, &domain.User{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	user, err := store.Users().Create(ctx, &domain.User{Name: "Booker", Email: "booker@example.com"})
	require.NoError(t, err)
	item, err := store.Items().Create(ctx, &domain.Item{Name: "Дрель", Description: "Ударная дрель", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)

	return fixture{store: store, owner: owner, user: user, item: item}
}

func (f fixture) book(t *testing.T, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
		Start:  start,
		End:    end,
		Status: status,
		Item:   domain.BookingItem{ID: f.item.ID},
		Booker: domain.BookingUser{ID: f.user.ID},
	})
	require.NoError(t, err)
	return b
}

func TestUsers_EmailUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Users().Create(ctx, &domain.User{Name: "Copy", Email: "owner@example.com"})
	assert.ErrorIs(t, err, userRepo.ErrEmailExists)

	_, err = f.store.Users().Update(ctx, &domain.User{ID: f.user.ID, Name: "Booker", Email: "owner@example.com"})
	assert.ErrorIs(t, err, userRepo.ErrEmailExists)

	_, err = f.store.Users().Update(ctx, &domain.User{ID: f.user.ID, Name: "Renamed", Email: "booker@example.com"})
	assert.NoError(t, err)
}

func TestUsers_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, now.Add(time.Hour), now.Add(2*time.Hour), domain.StatusWaiting)

	require.NoError(t, f.store.Users().Delete(ctx, f.owner.ID))

	_, err := f.store.Items().GetByID(ctx, f.item.ID)
	assert.ErrorIs(t, err, itemRepo.ErrItemNotFound)
	_, err = f.store.Bookings().GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}

func TestBookings_JoinsItemAndBooker(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, now.Add(time.Hour), now.Add(2*time.Hour), domain.StatusWaiting)

	got, err := f.store.Bookings().GetByID(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, got.Item.OwnerID)
	assert.Equal(t, "Дрель", got.Item.Name)
	assert.Equal(t, "Booker", got.Booker.Name)
}

func TestBookings_LastAndNextApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := f.book(t, now.Add(-72*time.Hour), now.Add(-48*time.Hour), domain.StatusApproved)
	last := f.book(t, now.Add(-24*time.Hour), now.Add(-12*time.Hour), domain.StatusApproved)
	f.book(t, now.Add(12*time.Hour), now.Add(24*time.Hour), domain.StatusWaiting)
	next := f.book(t, now.Add(36*time.Hour), now.Add(48*time.Hour), domain.StatusApproved)
	f.book(t, now.Add(72*time.Hour), now.Add(96*time.Hour), domain.StatusApproved)

	gotLast, err := f.store.Bookings().GetLastApproved(ctx, f.item.ID, now)
	require.NoError(t, err)
	assert.Equal(t, last.ID, gotLast.ID)
	assert.NotEqual(t, older.ID, gotLast.ID)

	gotNext, err := f.store.Bookings().GetNextApproved(ctx, f.item.ID, now)
	require.NoError(t, err)
	assert.Equal(t, next.ID, gotNext.ID)
	assert.Equal(t, f.user.ID, gotNext.BookerID)

	none, err := f.store.Bookings().GetNextApproved(ctx, f.item.ID, now.Add(1000*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestBookings_UpdateStatusIsCompareAndSwap(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, now.Add(time.Hour), now.Add(2*time.Hour), domain.StatusWaiting)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.store.Bookings().UpdateStatus(context.Background(), b.ID, domain.StatusWaiting, domain.StatusApproved)
			if err == nil {
				wins.Add(1)
			} else {
				assert.ErrorIs(t, err, bookingRepo.ErrStatusChanged)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestBookings_FilterOrderedByStartDescAndPaged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t)
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		for i := 0; i < n; i++ {
			start := now.Add(time.Duration(rapid.IntRange(-100, 100).Draw(rt, "start")) * time.Hour)
			f.book(t, start, start.Add(time.Hour), domain.StatusWaiting)
		}

		offset := rapid.IntRange(0, 25).Draw(rt, "offset")
		limit := rapid.IntRange(1, 25).Draw(rt, "limit")
		bookerID := f.user.ID

		all, err := f.store.Bookings().GetWithFilter(context.Background(), domain.BookingsFilter{BookerID: &bookerID})
		require.NoError(rt, err)
		page, err := f.store.Bookings().GetWithFilter(context.Background(), domain.BookingsFilter{
			BookerID: &bookerID,
			Offset:   offset,
			Limit:    limit,
		})
		require.NoError(rt, err)

		for i := 1; i < len(all); i++ {
			if all[i].Start.After(all[i-1].Start) {
				rt.Fatalf("bookings not ordered by start desc at %d", i)
			}
		}

		expected := len(all) - offset
		if expected < 0 {
			expected = 0
		}
		if expected > limit {
			expected = limit
		}
		require.Len(rt, page, expected)
		for i := range page {
			assert.Equal(rt, all[offset+i].ID, page[i].ID)
		}
	})
}

func TestItems_Search(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Items().Create(ctx, &domain.Item{Name: "first", Description: "This is a description", Available: true, OwnerID: 1})
	require.NoError(t, err)
	_, err = store.Items().Create(ctx, &domain.Item{Name: "second", Description: "Other", Available: false, OwnerID: 1})
	require.NoError(t, err)

	found, err := store.Items().Search(ctx, "desc")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "first", found[0].Name)

	empty, err := store.Items().Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTxManager_NestedDoesNotDeadlock(t *testing.T) {
	store := NewStore()
	tx := store.TxManager()

	err := tx.DoReadOnly(context.Background(), func(ctx context.Context) error {
		return tx.Do(ctx, func(context.Context) error { return nil })
	})

	assert.NoError(t, err)
}
