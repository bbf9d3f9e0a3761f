package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
)

// BookingRepository бронирования в памяти
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextID("bookings")
	s.bookings[booking.ID] = storedBooking{
		ID:       booking.ID,
		Start:    booking.Start,
		End:      booking.End,
		ItemID:   booking.Item.ID,
		BookerID: booking.Booker.ID,
		Status:   booking.Status,
	}
	return booking, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return s.joinLocked(stored), nil
}

// GetByIDForUpdate строки не блокируются, транзакции хранилища и так выполняются по одной
func (r *BookingRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	bookings := r.matching(filter.Matches)

	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].Start.After(bookings[j].Start)
	})

	return paginate(bookings, filter.Offset, filter.Limit), nil
}

func (r *BookingRepository) GetLastApproved(_ context.Context, itemID int64, now time.Time) (*domain.BookingRef, error) {
	candidates := r.matching(func(b *domain.Booking) bool {
		return b.Item.ID == itemID && b.IsApproved() && b.Start.Before(now)
	})
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Start.After(candidates[j].Start) })
	return &domain.BookingRef{ID: candidates[0].ID, BookerID: candidates[0].Booker.ID}, nil
}

func (r *BookingRepository) GetNextApproved(_ context.Context, itemID int64, now time.Time) (*domain.BookingRef, error) {
	candidates := r.matching(func(b *domain.Booking) bool {
		return b.Item.ID == itemID && b.IsApproved() && b.Start.After(now)
	})
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Start.Before(candidates[j].Start) })
	return &domain.BookingRef{ID: candidates[0].ID, BookerID: candidates[0].Booker.ID}, nil
}

func (r *BookingRepository) HasFinishedApproved(_ context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	found := r.matching(func(b *domain.Booking) bool {
		return b.Booker.ID == bookerID && b.Item.ID == itemID && b.IsApproved() && b.End.Before(now)
	})
	return len(found) > 0, nil
}

// UpdateStatus меняет статус, только если текущий равен expected
func (r *BookingRepository) UpdateStatus(_ context.Context, id int64, expected, status domain.BookingStatus) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[id]
	if !ok || stored.Status != expected {
		return bookingRepo.ErrStatusChanged
	}

	stored.Status = status
	s.bookings[id] = stored
	return nil
}

func (r *BookingRepository) matching(match func(b *domain.Booking) bool) []*domain.Booking {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, stored := range s.bookings {
		b := s.joinLocked(stored)
		if match(b) {
			result = append(result, b)
		}
	}
	return result
}

func (s *Store) joinLocked(stored storedBooking) *domain.Booking {
	it := s.items[stored.ItemID]
	booker := s.users[stored.BookerID]

	return &domain.Booking{
		ID:     stored.ID,
		Start:  stored.Start,
		End:    stored.End,
		Status: stored.Status,
		Item:   domain.BookingItem{ID: stored.ItemID, Name: it.Name, OwnerID: it.OwnerID},
		Booker: domain.BookingUser{ID: stored.BookerID, Name: booker.Name},
	}
}

// paginate пропускает offset элементов и оставляет не больше limit, limit = 0 без ограничения
func paginate[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return list[:0]
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
