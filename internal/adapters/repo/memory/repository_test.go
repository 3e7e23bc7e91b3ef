package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/rememble/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositorySaveLoadIsolatesCallers(t *testing.T) {
	t.Parallel()

	repo := NewRepository(domain.Network{})
	network := domain.Network{
		Connections:     []domain.Connection{{ID: "c1", Profile: domain.Profile{ID: "p1", Name: "Jane"}}},
		SentInvitations: []domain.ProfileID{"p1"},
	}

	require.NoError(t, repo.Save(context.Background(), network))
	network.Connections[0].PrivateNote = "mutated after save"

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Connections[0].PrivateNote)
	assert.Equal(t, 1, repo.Saves())
}

func TestRepositoryInjectedFailures(t *testing.T) {
	t.Parallel()

	repo := NewRepository(domain.Network{SentInvitations: []domain.ProfileID{"p1"}})
	boom := errors.New("quota exceeded")

	repo.FailSaves(boom)
	require.ErrorIs(t, repo.Save(context.Background(), domain.Network{}), boom)
	assert.Equal(t, []domain.ProfileID{"p1"}, repo.Snapshot().SentInvitations)

	repo.FailLoads(boom)
	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewRepository(domain.Network{})
	require.ErrorIs(t, repo.Save(ctx, domain.Network{}), context.Canceled)
	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
