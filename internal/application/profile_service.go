package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/andriwibowo/blognest/internal/domain/entity"
	"github.com/andriwibowo/blognest/internal/domain/repository"
)

// ProfileService manages the single profile a user may own. Mutations are
// always scoped to the caller's identity, so an ownership mismatch is
// structurally impossible; only the public read takes an arbitrary user id.
type ProfileService struct {
	Repo   repository.ProfileRepository
	Logger *logrus.Logger
}

func NewProfileService(repo repository.ProfileRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Repo: repo, Logger: logger}
}

type CreateProfileInput struct {
	Name      string
	Career    string
	Bio       string
	Work      string
	Education string
	Skill     string
	ProfPic   string
}

// UpdateProfileInput carries the fields of a PUT request. Empty fields
// keep their stored values.
type UpdateProfileInput struct {
	Name      string
	Career    string
	Bio       string
	Work      string
	Education string
	Skill     string
	ProfPic   string
}

func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Create(ctx context.Context, ownerID string, in CreateProfileInput) (*entity.Profile, error) {
	if in.Name == "" || in.Career == "" || in.Bio == "" || in.Work == "" || in.Education == "" || in.Skill == "" {
		return nil, ErrMissingFields
	}
	p := &entity.Profile{
		User:      ownerID,
		Name:      in.Name,
		Career:    in.Career,
		Bio:       in.Bio,
		Work:      in.Work,
		Education: in.Education,
		Skill:     in.Skill,
		ProfPic:   in.ProfPic,
	}
	// The unique index on user backs this up under concurrent creates.
	if err := s.Repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Update(ctx context.Context, callerID string, in UpdateProfileInput) (*entity.Profile, error) {
	p, err := s.GetByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Career != "" {
		p.Career = in.Career
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.Work != "" {
		p.Work = in.Work
	}
	if in.Education != "" {
		p.Education = in.Education
	}
	if in.Skill != "" {
		p.Skill = in.Skill
	}
	if in.ProfPic != "" {
		p.ProfPic = in.ProfPic
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Delete(ctx context.Context, callerID string) error {
	if err := s.Repo.DeleteByUser(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}
