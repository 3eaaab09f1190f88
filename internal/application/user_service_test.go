package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriwibowo/blognest/pkg/helpers"
	"github.com/andriwibowo/blognest/pkg/mailer"
)

func newUserService(repo *memUserRepo) *UserService {
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	return NewUserService(repo, tokens, nil, testLogger(), "blognest-test")
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	svc := newUserService(repo)

	u, token, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Alice", u.Name)

	// Password must be stored hashed, never in plain text.
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "password123"))

	// Token encodes the new user's id.
	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestUserService_RegisterEnqueuesWelcomeEmail(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	svc := newUserService(newMemUserRepo())
	svc.Pub = pub

	u, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	job, ok := pub.published[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, u.Email, job.To)
	assert.Equal(t, mailer.TemplateWelcome, job.Template)
}

func TestUserService_RegisterSurvivesPublisherFailure(t *testing.T) {
	t.Parallel()

	svc := newUserService(newMemUserRepo())
	svc.Pub = &fakePublisher{err: errors.New("broker down")}

	// Mail infrastructure failures never fail registration.
	u, token, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, token)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	svc := newUserService(repo)

	_, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Other Alice", "alice@example.com", "different456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	svc := newUserService(repo)

	reg, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)

	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
}

func TestUserService_LoginRejected(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	svc := newUserService(repo)

	_, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	// Wrong password and unknown email are indistinguishable to the caller.
	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
