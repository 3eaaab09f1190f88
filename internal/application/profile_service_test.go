package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriwibowo/blognest/internal/domain/entity"
)

func fullProfileInput() CreateProfileInput {
	return CreateProfileInput{
		Name:      "Alice",
		Career:    "Engineer",
		Bio:       "writes about systems",
		Work:      "Acme",
		Education: "State University",
		Skill:     "Go",
	}
}

func seedProfile(t *testing.T, svc *ProfileService, owner string) *entity.Profile {
	t.Helper()
	p, err := svc.Create(context.Background(), owner, fullProfileInput())
	require.NoError(t, err)
	return p
}

func TestProfileService_Create(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemProfileRepo(), testLogger())

	p := seedProfile(t, svc, "user-1")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "user-1", p.User)

	got, err := svc.GetByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestProfileService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemProfileRepo(), testLogger())

	in := fullProfileInput()
	in.Bio = ""
	_, err := svc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestProfileService_OneProfilePerUser(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemProfileRepo(), testLogger())
	seedProfile(t, svc, "user-1")

	_, err := svc.Create(context.Background(), "user-1", fullProfileInput())
	assert.ErrorIs(t, err, ErrProfileExists)

	// A different user is unaffected.
	_, err = svc.Create(context.Background(), "user-2", fullProfileInput())
	assert.NoError(t, err)
}

func TestProfileService_UpdateMergesMissingFields(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemProfileRepo(), testLogger())
	seedProfile(t, svc, "user-1")

	got, err := svc.Update(context.Background(), "user-1", UpdateProfileInput{
		Career: "Staff Engineer",
		Skill:  "Go, Distributed Systems",
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Career)
	assert.Equal(t, "Go, Distributed Systems", got.Skill)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "writes about systems", got.Bio)
}

func TestProfileService_UpdateWithoutProfile(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemProfileRepo(), testLogger())

	_, err := svc.Update(context.Background(), "user-1", UpdateProfileInput{Name: "x"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_Delete(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newMemProfileRepo(), testLogger())
	seedProfile(t, svc, "user-1")

	require.NoError(t, svc.Delete(context.Background(), "user-1"))

	_, err := svc.GetByUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	err = svc.Delete(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
