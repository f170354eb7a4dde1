package service

import (
	"context"
	"testing"

	"huddle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_Create(t *testing.T) {
	t.Parallel()

	t.Run("reserved name rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewCommunityService(noopCommunityRepo(), noopMembershipRepo(), noopUserRepo())
		_, err := svc.Create(context.Background(), CreateCommunityInput{
			Name: "admin", CreatorEmail: "marla@example.com",
		})
		assertValidationError(t, err)
	})

	t.Run("unknown creator is not found", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", email)
		}
		svc := NewCommunityService(noopCommunityRepo(), noopMembershipRepo(), userRepo)
		_, err := svc.Create(context.Background(), CreateCommunityInput{
			Name: "gophers", CreatorEmail: "ghost@example.com",
		})
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("duplicate name propagates conflict", func(t *testing.T) {
		t.Parallel()
		communityRepo := noopCommunityRepo()
		communityRepo.createFn = func(_ context.Context, _ *models.Community) error {
			return models.NewConflictError("A community with this name already exists")
		}
		svc := NewCommunityService(communityRepo, noopMembershipRepo(), noopUserRepo())
		_, err := svc.Create(context.Background(), CreateCommunityInput{
			Name: "gophers", CreatorEmail: "marla@example.com",
		})
		assertErrorCode(t, err, models.CodeConflict)
	})

	t.Run("creator is not enrolled as a member", func(t *testing.T) {
		t.Parallel()
		membershipRepo := noopMembershipRepo()
		enrolled := false
		membershipRepo.addFn = func(_ context.Context, _, _ uint) (bool, error) {
			enrolled = true
			return true, nil
		}
		svc := NewCommunityService(noopCommunityRepo(), membershipRepo, noopUserRepo())
		view, err := svc.Create(context.Background(), CreateCommunityInput{
			Name: "gophers", Description: "Go talk", CreatorEmail: "marla@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "gophers", view.Name)
		assert.Equal(t, "marla@example.com", view.CreatorEmail)
		assert.False(t, enrolled)
	})
}

func TestCommunityService_Join(t *testing.T) {
	t.Parallel()

	t.Run("first join", func(t *testing.T) {
		t.Parallel()
		svc := NewCommunityService(noopCommunityRepo(), noopMembershipRepo(), noopUserRepo())
		status, err := svc.Join(context.Background(), "marla@example.com", "gophers")
		require.NoError(t, err)
		assert.Equal(t, JoinStatusJoined, status)
	})

	t.Run("repeat join is idempotent", func(t *testing.T) {
		t.Parallel()
		membershipRepo := noopMembershipRepo()
		membershipRepo.addFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewCommunityService(noopCommunityRepo(), membershipRepo, noopUserRepo())
		status, err := svc.Join(context.Background(), "marla@example.com", "gophers")
		require.NoError(t, err)
		assert.Equal(t, JoinStatusAlreadyMember, status)
	})

	t.Run("unknown community is not found", func(t *testing.T) {
		t.Parallel()
		communityRepo := noopCommunityRepo()
		communityRepo.getByNameFn = func(_ context.Context, name string) (*models.Community, error) {
			return nil, models.NewNotFoundError("Community", name)
		}
		svc := NewCommunityService(communityRepo, noopMembershipRepo(), noopUserRepo())
		_, err := svc.Join(context.Background(), "marla@example.com", "missing")
		assertErrorCode(t, err, models.CodeNotFound)
	})
}

func TestCommunityService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("missing community is not found", func(t *testing.T) {
		t.Parallel()
		communityRepo := noopCommunityRepo()
		communityRepo.getByNameFn = func(_ context.Context, name string) (*models.Community, error) {
			return nil, models.NewNotFoundError("Community", name)
		}
		svc := NewCommunityService(communityRepo, noopMembershipRepo(), noopUserRepo())
		err := svc.Delete(context.Background(), "marla@example.com", "missing")
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		t.Parallel()
		communityRepo := noopCommunityRepo()
		communityRepo.getByNameFn = func(_ context.Context, name string) (*models.Community, error) {
			return &models.Community{ID: 3, Name: name, CreatorID: 42}, nil
		}
		svc := NewCommunityService(communityRepo, noopMembershipRepo(), noopUserRepo())
		err := svc.Delete(context.Background(), "marla@example.com", "gophers")
		assertErrorCode(t, err, models.CodeForbidden)
	})

	t.Run("creator deletes", func(t *testing.T) {
		t.Parallel()
		deleted := false
		communityRepo := noopCommunityRepo()
		communityRepo.softDeleteFn = func(_ context.Context, _ *models.Community) error {
			deleted = true
			return nil
		}
		svc := NewCommunityService(communityRepo, noopMembershipRepo(), noopUserRepo())
		require.NoError(t, svc.Delete(context.Background(), "marla@example.com", "gophers"))
		assert.True(t, deleted)
	})
}

func TestCommunityService_Details(t *testing.T) {
	t.Parallel()

	communityRepo := noopCommunityRepo()
	communityRepo.getByNameFn = func(_ context.Context, name string) (*models.Community, error) {
		return &models.Community{
			ID:          3,
			Name:        name,
			Description: "Go talk",
			CreatorID:   1,
			Creator:     models.User{ID: 1, Username: "marla", Email: "marla@example.com"},
		}, nil
	}
	svc := NewCommunityService(communityRepo, noopMembershipRepo(), noopUserRepo())

	view, err := svc.Details(context.Background(), "gophers")
	require.NoError(t, err)
	assert.Equal(t, "gophers", view.Name)
	assert.Equal(t, "marla", view.CreatorName)
	assert.Equal(t, "marla@example.com", view.CreatorEmail)
}
