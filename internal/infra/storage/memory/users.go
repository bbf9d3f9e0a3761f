package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

// UserRepository пользователи в памяти
type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(user.Email, 0) {
		return nil, userRepo.ErrEmailExists
	}

	user.ID = s.nextID("users")
	s.users[user.ID] = *user
	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetAll(_ context.Context) ([]*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) Exists(_ context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, userRepo.ErrUserNotFound
	}
	if s.emailTakenLocked(user.Email, user.ID) {
		return nil, userRepo.ErrEmailExists
	}

	s.users[user.ID] = *user
	return user, nil
}

// Delete удаляет пользователя вместе с его вещами, бронированиями, отзывами и запросами
func (r *UserRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(s.users, id)

	for itemID, it := range s.items {
		if it.OwnerID == id {
			s.deleteItemLocked(itemID)
		}
	}
	for bookingID, b := range s.bookings {
		if b.BookerID == id {
			delete(s.bookings, bookingID)
		}
	}
	for commentID, c := range s.comments {
		if c.AuthorID == id {
			delete(s.comments, commentID)
		}
	}
	for requestID, req := range s.requests {
		if req.RequesterID == id {
			delete(s.requests, requestID)
			s.detachRequestLocked(requestID)
		}
	}
	return nil
}

func (s *Store) emailTakenLocked(email string, exceptID int64) bool {
	for _, u := range s.users {
		if u.ID != exceptID && u.Email == email {
			return true
		}
	}
	return false
}
