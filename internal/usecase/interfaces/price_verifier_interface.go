package interfaces

import (
	"context"

	"hiko_buyforme/internal/domain/entities"
)

// IPriceVerifier abstracts the external price verification service.
//
// A returned error or a result with Success=false both mean "unverified";
// callers fall back to the listing price.
//
//go:generate mockgen -source=price_verifier_interface.go -destination=mocks/price_verifier_interface_mock.go -package=mock_interfaces
type IPriceVerifier interface {
	Verify(ctx context.Context, productURL string) (entities.PriceCheckResult, error)
}
