package repository

import (
	"context"
	"sync"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase/interfaces"
)

// RequestMemoryRepository keeps requests in process memory. Values are deep
// copied on the way in and out so callers never share state with the store.
type RequestMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.BuyForMeRequest
}

var _ interfaces.IBuyForMeRequestRepository = (*RequestMemoryRepository)(nil)

func NewRequestMemoryRepository() *RequestMemoryRepository {
	return &RequestMemoryRepository{items: make(map[string]entities.BuyForMeRequest)}
}

func (r *RequestMemoryRepository) Create(_ context.Context, req entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[req.ID]; ok {
		return entities.BuyForMeRequest{}, ErrAlreadyExists
	}
	r.items[req.ID] = req.Clone()
	return req.Clone(), nil
}

func (r *RequestMemoryRepository) GetByID(_ context.Context, id string) (entities.BuyForMeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return entities.BuyForMeRequest{}, nil
	}
	return it.Clone(), nil
}

func (r *RequestMemoryRepository) Update(_ context.Context, req entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[req.ID]; !ok {
		return entities.BuyForMeRequest{}, nil
	}
	r.items[req.ID] = req.Clone()
	return req.Clone(), nil
}

func (r *RequestMemoryRepository) ListByUserID(_ context.Context, userID string) ([]entities.BuyForMeRequest, error) {
	return r.filter(func(it entities.BuyForMeRequest) bool { return it.UserID == userID }), nil
}

func (r *RequestMemoryRepository) ListByStatus(_ context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error) {
	return r.filter(func(it entities.BuyForMeRequest) bool { return it.Status == status }), nil
}

func (r *RequestMemoryRepository) ListByHotdealID(_ context.Context, hotdealID string) ([]entities.BuyForMeRequest, error) {
	return r.filter(func(it entities.BuyForMeRequest) bool { return it.HotdealID == hotdealID }), nil
}

func (r *RequestMemoryRepository) CountByStatus(_ context.Context) (map[entities.RequestStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[entities.RequestStatus]int)
	for _, it := range r.items {
		out[it.Status]++
	}
	return out, nil
}

func (r *RequestMemoryRepository) filter(keep func(entities.BuyForMeRequest) bool) []entities.BuyForMeRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.BuyForMeRequest, 0)
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}
