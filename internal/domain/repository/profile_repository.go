package repository

import (
	"context"

	"github.com/andriwibowo/blognest/internal/domain/entity"
)

// ProfileRepository defines the interface for profile document operations.
// Profiles are addressed by the owning user, never by their own id.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByUser(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, p *entity.Profile) error
	DeleteByUser(ctx context.Context, userID string) error
}
