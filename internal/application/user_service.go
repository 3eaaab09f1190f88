package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/andriwibowo/blognest/internal/domain/entity"
	"github.com/andriwibowo/blognest/internal/domain/repository"
	"github.com/andriwibowo/blognest/pkg/helpers"
	"github.com/andriwibowo/blognest/pkg/mailer"
)

// EmailPublisher enqueues email jobs for the mail worker.
// *helpers.RabbitPublisher satisfies it.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserService covers registration and login. It owns the only paths that
// mint identity tokens.
type UserService struct {
	Repo    repository.UserRepository
	Tokens  *helpers.TokenManager
	Pub     EmailPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewUserService(repo repository.UserRepository, tokens *helpers.TokenManager, pub EmailPublisher, logger *logrus.Logger, appName string) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Pub: pub, Logger: logger, AppName: appName}
}

// Register creates the user and returns it with a fresh identity token.
// The welcome email is fire-and-forget; registration never fails on it.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, _, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateWelcome,
			Data:     map[string]any{"Name": u.Name, "AppName": s.AppName},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("failed to enqueue welcome email")
		}
	}

	return u, token, nil
}

// Login validates email/password and issues a new identity token.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
