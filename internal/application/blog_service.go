package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/andriwibowo/blognest/internal/domain/entity"
	"github.com/andriwibowo/blognest/internal/domain/repository"
)

// BlogService applies ownership and validation rules over the blog store.
type BlogService struct {
	Repo   repository.BlogRepository
	Logger *logrus.Logger
}

func NewBlogService(repo repository.BlogRepository, logger *logrus.Logger) *BlogService {
	return &BlogService{Repo: repo, Logger: logger}
}

type CreateBlogInput struct {
	Title      string
	Caption    string
	Desc       string
	Pic        string
	Category   string
	AuthorName string
}

// UpdateBlogInput carries the fields of a PUT request. Empty fields keep
// their stored values (replace-or-keep-existing, not a clearing patch).
type UpdateBlogInput struct {
	Title      string
	Caption    string
	Desc       string
	Pic        string
	Category   string
	AuthorName string
}

func (s *BlogService) Create(ctx context.Context, ownerID string, in CreateBlogInput) (*entity.Blog, error) {
	if in.Title == "" || in.Caption == "" || in.Desc == "" || in.Category == "" {
		return nil, ErrMissingFields
	}
	if !entity.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	b := &entity.Blog{
		User:       ownerID,
		Title:      in.Title,
		Caption:    in.Caption,
		Desc:       in.Desc,
		Pic:        in.Pic,
		Category:   in.Category,
		AuthorName: in.AuthorName,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListMine returns the caller's blogs, unordered as stored.
func (s *BlogService) ListMine(ctx context.Context, ownerID string) ([]entity.Blog, error) {
	return s.Repo.ListByUser(ctx, ownerID)
}

// ListGlobal returns every blog regardless of owner.
func (s *BlogService) ListGlobal(ctx context.Context) ([]entity.Blog, error) {
	return s.Repo.ListAll(ctx)
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

// Update checks existence before ownership, then merges the supplied
// fields over the stored document.
func (s *BlogService) Update(ctx context.Context, id, callerID string, in UpdateBlogInput) (*entity.Blog, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.User != callerID {
		return nil, ErrNotOwner
	}
	if in.Category != "" && !entity.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}

	if in.Title != "" {
		b.Title = in.Title
	}
	if in.Caption != "" {
		b.Caption = in.Caption
	}
	if in.Desc != "" {
		b.Desc = in.Desc
	}
	if in.Pic != "" {
		b.Pic = in.Pic
	}
	if in.Category != "" {
		b.Category = in.Category
	}
	if in.AuthorName != "" {
		b.AuthorName = in.AuthorName
	}

	if err := s.Repo.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

// Delete permanently removes the blog. Same gate order as Update.
func (s *BlogService) Delete(ctx context.Context, id, callerID string) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.User != callerID {
		return ErrNotOwner
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return err
	}
	return nil
}
