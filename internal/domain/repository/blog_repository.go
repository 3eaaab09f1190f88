package repository

import (
	"context"

	"github.com/andriwibowo/blognest/internal/domain/entity"
)

// BlogRepository defines the interface for blog document operations.
// Update replaces the stored document wholesale; merge semantics live
// in the application layer.
type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Blog, error)
	ListAll(ctx context.Context) ([]entity.Blog, error)
	Update(ctx context.Context, b *entity.Blog) error
	Delete(ctx context.Context, id string) error
}
