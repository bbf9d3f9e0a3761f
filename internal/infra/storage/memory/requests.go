package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/itemrequest"
)

// ItemRequestRepository запросы вещей в памяти
type ItemRequestRepository struct {
	store *Store
}

func (r *ItemRequestRepository) Create(_ context.Context, request *domain.ItemRequest) (*domain.ItemRequest, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	request.ID = s.nextID("item_requests")
	s.requests[request.ID] = *request
	return request, nil
}

func (r *ItemRequestRepository) GetByID(_ context.Context, id int64) (*domain.ItemRequest, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return &request, nil
}

func (r *ItemRequestRepository) GetByRequesterID(_ context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	return r.sorted(func(req *domain.ItemRequest) bool { return req.RequesterID == requesterID }), nil
}

func (r *ItemRequestRepository) GetOthers(_ context.Context, userID int64, offset, limit int) ([]*domain.ItemRequest, error) {
	others := r.sorted(func(req *domain.ItemRequest) bool { return req.RequesterID != userID })
	return paginate(others, offset, limit), nil
}

// sorted возвращает подходящие запросы, новые первыми
func (r *ItemRequestRepository) sorted(match func(req *domain.ItemRequest) bool) []*domain.ItemRequest {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.ItemRequest, 0)
	for _, req := range s.requests {
		req := req
		if match(&req) {
			result = append(result, &req)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Created.Equal(result[j].Created) {
			return result[i].ID > result[j].ID
		}
		return result[i].Created.After(result[j].Created)
	})
	return result
}
