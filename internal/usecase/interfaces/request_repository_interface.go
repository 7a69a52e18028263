package interfaces

import (
	"context"

	"hiko_buyforme/internal/domain/entities"
)

// IBuyForMeRequestRepository abstracts persistence for BuyForMeRequest.
//
// Contract shared by every backend:
//   - lookups of a missing id return the zero value and a nil error
//   - Update is last-write-wins; updating a missing id returns the zero value
//   - list calls return the full matching set, order unspecified
//
//go:generate mockgen -source=request_repository_interface.go -destination=mocks/request_repository_interface_mock.go -package=mock_interfaces
type IBuyForMeRequestRepository interface {
	Create(ctx context.Context, r entities.BuyForMeRequest) (entities.BuyForMeRequest, error)
	GetByID(ctx context.Context, id string) (entities.BuyForMeRequest, error)
	Update(ctx context.Context, r entities.BuyForMeRequest) (entities.BuyForMeRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.BuyForMeRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error)
	ListByHotdealID(ctx context.Context, hotdealID string) ([]entities.BuyForMeRequest, error)
	CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error)
}
