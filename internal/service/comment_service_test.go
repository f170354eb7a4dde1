package service

import (
	"context"
	"strings"
	"testing"

	"huddle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Add_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Add(ctx, AddCommentInput{PostID: 1, UserID: 1})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Add(ctx, AddCommentInput{
			PostID: 1, UserID: 1, Content: strings.Repeat("x", 10001),
		})
		assertValidationError(t, err)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), postRepo, noopUserRepo())
		_, err := svc2.Add(ctx, AddCommentInput{PostID: 99, UserID: 1, Content: "hi"})
		assertErrorCode(t, err, models.CodeNotFound)
	})
}

func TestCommentService_Add_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		return nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	view, err := svc.Add(context.Background(), AddCommentInput{
		PostID: 1, UserID: 1, Content: "  hello  ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), view.ID)
	assert.Equal(t, "hello", view.Content)
	assert.Equal(t, "marla", view.Username)
	assert.Equal(t, 0, view.Votes)
}

func TestCommentService_Update(t *testing.T) {
	t.Parallel()

	t.Run("blank content is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())
		_, err := svc.Update(context.Background(), UpdateCommentInput{CommentID: 1})
		assertValidationError(t, err)
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		_, err := svc.Update(context.Background(), UpdateCommentInput{CommentID: 9, Content: "edit"})
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("edit replaces content and flips the edited flag", func(t *testing.T) {
		t.Parallel()
		var saved *models.Comment
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, Content: "original", Votes: 3}, nil
		}
		commentRepo.updateFn = func(_ context.Context, c *models.Comment) error {
			saved = c
			return nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())

		view, err := svc.Update(context.Background(), UpdateCommentInput{
			CommentID: 7, Content: "  second thoughts  ",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "second thoughts", saved.Content)
		assert.True(t, saved.Edited)
		assert.True(t, view.Edited)
		assert.Equal(t, 3, view.Votes)
	})
}

func TestCommentService_ListForPost(t *testing.T) {
	t.Parallel()

	t.Run("missing post is not found, not an empty list", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewCommentService(noopCommentRepo(), postRepo, noopUserRepo())
		_, err := svc.ListForPost(context.Background(), 99)
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("existing post with no comments is an empty list", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())
		views, err := svc.ListForPost(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestCommentService_Votes(t *testing.T) {
	t.Parallel()

	t.Run("upvote applies +1", func(t *testing.T) {
		t.Parallel()
		var gotDelta int
		commentRepo := noopCommentRepo()
		commentRepo.adjustVotesFn = func(_ context.Context, _ uint, delta int) error {
			gotDelta = delta
			return nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		require.NoError(t, svc.UpVote(context.Background(), 9))
		assert.Equal(t, 1, gotDelta)
	})

	t.Run("downvote applies -1", func(t *testing.T) {
		t.Parallel()
		var gotDelta int
		commentRepo := noopCommentRepo()
		commentRepo.adjustVotesFn = func(_ context.Context, _ uint, delta int) error {
			gotDelta = delta
			return nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		require.NoError(t, svc.DownVote(context.Background(), 9))
		assert.Equal(t, -1, gotDelta)
	})

	t.Run("vote on missing comment is not found", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.adjustVotesFn = func(_ context.Context, id uint, _ int) error {
			return models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), noopUserRepo())
		err := svc.UpVote(context.Background(), 404)
		assertErrorCode(t, err, models.CodeNotFound)
	})
}
