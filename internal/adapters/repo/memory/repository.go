package memory

import (
	"context"
	"sync"

	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
)

// Repository keeps the network in process memory. Saves and loads can be
// made to fail to exercise the store's degraded paths.
type Repository struct {
	mu      sync.RWMutex
	network domain.Network
	saves   int
	loadErr error
	saveErr error
}

var _ ports.NetworkRepository = (*Repository)(nil)

func NewRepository(seed domain.Network) *Repository {
	return &Repository{network: seed.Clone()}
}

func (r *Repository) Load(ctx context.Context) (domain.Network, error) {
	if err := ctx.Err(); err != nil {
		return domain.Network{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.loadErr != nil {
		return domain.Network{}, r.loadErr
	}

	return r.network.Clone(), nil
}

func (r *Repository) Save(ctx context.Context, network domain.Network) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}

	r.network = network.Clone()
	r.saves++

	return nil
}

func (r *Repository) FailLoads(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadErr = err
}

func (r *Repository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

// Saves counts successful writes.
func (r *Repository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func (r *Repository) Snapshot() domain.Network {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.network.Clone()
}
