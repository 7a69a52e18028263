package interfaces

import (
	"context"

	"hiko_buyforme/internal/domain/entities"
)

// IPriceCheckCache keeps recent verification results per product url.
// Get reports found=false on a miss.
//
//go:generate mockgen -source=price_check_cache_interface.go -destination=mocks/price_check_cache_interface_mock.go -package=mock_interfaces
type IPriceCheckCache interface {
	Get(ctx context.Context, productURL string) (entities.PriceCheckResult, bool, error)
	Set(ctx context.Context, productURL string, result entities.PriceCheckResult) error
}
