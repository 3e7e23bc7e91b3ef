package ports

import (
	"context"

	"github.com/bnema/rememble/internal/domain"
)

type ProfileCatalog interface {
	List(ctx context.Context) ([]domain.Profile, error)
	GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error)
	PendingInvitations(ctx context.Context) ([]domain.PendingInvitation, error)
}
