package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
)

// ItemRepository вещи в памяти
type ItemRepository struct {
	store *Store
}

func (r *ItemRepository) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID("items")
	s.items[item.ID] = *item
	return item, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	return &it, nil
}

func (r *ItemRepository) GetByOwnerID(_ context.Context, ownerID int64) ([]*domain.Item, error) {
	return r.filter(func(it *domain.Item) bool { return it.OwnerID == ownerID }), nil
}

func (r *ItemRepository) GetByRequestIDs(_ context.Context, requestIDs []int64) ([]*domain.Item, error) {
	wanted := make(map[int64]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = struct{}{}
	}

	return r.filter(func(it *domain.Item) bool {
		if it.RequestID == nil {
			return false
		}
		_, ok := wanted[*it.RequestID]
		return ok
	}), nil
}

func (r *ItemRepository) Search(_ context.Context, text string) ([]*domain.Item, error) {
	return r.filter(func(it *domain.Item) bool { return it.MatchesSearch(text) }), nil
}

func (r *ItemRepository) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[item.ID]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}

	stored.Name = item.Name
	stored.Description = item.Description
	stored.Available = item.Available
	s.items[item.ID] = stored
	return item, nil
}

func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return itemRepo.ErrItemNotFound
	}
	s.deleteItemLocked(id)
	return nil
}

func (r *ItemRepository) filter(match func(it *domain.Item) bool) []*domain.Item {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*domain.Item, 0)
	for _, it := range s.items {
		it := it
		if match(&it) {
			items = append(items, &it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *Store) deleteItemLocked(id int64) {
	delete(s.items, id)
	for bookingID, b := range s.bookings {
		if b.ItemID == id {
			delete(s.bookings, bookingID)
		}
	}
	for commentID, c := range s.comments {
		if c.ItemID == id {
			delete(s.comments, commentID)
		}
	}
}

func (s *Store) detachRequestLocked(requestID int64) {
	for id, it := range s.items {
		if it.RequestID != nil && *it.RequestID == requestID {
			it.RequestID = nil
			s.items[id] = it
		}
	}
}
