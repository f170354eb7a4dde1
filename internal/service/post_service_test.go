package service

import (
	"context"
	"testing"

	"huddle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Create(t *testing.T) {
	t.Parallel()

	t.Run("blank title rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo(), noopCommunityRepo())
		_, err := svc.Create(context.Background(), CreatePostInput{
			Title: "   ", Content: "body", UserID: 1, CommunityName: "gophers",
		})
		assertValidationError(t, err)
	})

	t.Run("unknown author is not found", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewPostService(noopPostRepo(), userRepo, noopCommunityRepo())
		_, err := svc.Create(context.Background(), CreatePostInput{
			Title: "hi", UserID: 99, CommunityName: "gophers",
		})
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("unknown community is not found", func(t *testing.T) {
		t.Parallel()
		communityRepo := noopCommunityRepo()
		communityRepo.getByNameFn = func(_ context.Context, name string) (*models.Community, error) {
			return nil, models.NewNotFoundError("Community", name)
		}
		svc := NewPostService(noopPostRepo(), noopUserRepo(), communityRepo)
		_, err := svc.Create(context.Background(), CreatePostInput{
			Title: "hi", UserID: 1, CommunityName: "missing",
		})
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("success flattens author and community", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, p *models.Post) error {
			p.ID = 5
			return nil
		}
		svc := NewPostService(postRepo, noopUserRepo(), noopCommunityRepo())
		view, err := svc.Create(context.Background(), CreatePostInput{
			Title: "hello", Content: "world", UserID: 1, CommunityName: "gophers",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), view.ID)
		assert.Equal(t, "marla", view.Username)
		assert.Equal(t, "gophers", view.CommunityName)
	})
}

func TestPostService_ListByCommunity_RequiresCommunity(t *testing.T) {
	t.Parallel()

	communityRepo := noopCommunityRepo()
	communityRepo.getByNameFn = func(_ context.Context, name string) (*models.Community, error) {
		return nil, models.NewNotFoundError("Community", name)
	}
	svc := NewPostService(noopPostRepo(), noopUserRepo(), communityRepo)
	_, err := svc.ListByCommunity(context.Background(), "missing")
	assertErrorCode(t, err, models.CodeNotFound)
}

func TestPostService_ListByUser(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listByUserFn = func(_ context.Context, userID uint) ([]*models.Post, error) {
		return []*models.Post{
			{ID: 2, Title: "second", UserID: userID, User: models.User{Username: "marla"}},
			{ID: 1, Title: "first", UserID: userID, User: models.User{Username: "marla"}},
		}, nil
	}
	svc := NewPostService(postRepo, noopUserRepo(), noopCommunityRepo())

	views, err := svc.ListByUser(context.Background(), "marla@example.com")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "second", views[0].Title)
}

func TestPostService_Delete_MissingIsNotFound(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.deleteFn = func(_ context.Context, id uint) error {
		return models.NewNotFoundError("Post", id)
	}
	svc := NewPostService(postRepo, noopUserRepo(), noopCommunityRepo())
	err := svc.Delete(context.Background(), 404)
	assertErrorCode(t, err, models.CodeNotFound)
}
