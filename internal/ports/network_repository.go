package ports

import (
	"context"

	"github.com/bnema/rememble/internal/domain"
)

// NetworkRepository persists the whole network as one unit. Load on a store
// that does not exist yet returns an empty network.
type NetworkRepository interface {
	Load(ctx context.Context) (domain.Network, error)
	Save(ctx context.Context, network domain.Network) error
}
