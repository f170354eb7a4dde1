package service

import (
	"context"
	"strings"

	"huddle/internal/models"
	"huddle/internal/repository"
	"huddle/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type AddCommentInput struct {
	Content string
	PostID  uint
	UserID  uint
}

type UpdateCommentInput struct {
	CommentID uint
	Content   string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Add persists a comment. Only the comment row is written; the post and
// user are touched read-only to verify the references.
func (s *CommentService) Add(ctx context.Context, in AddCommentInput) (*models.CommentView, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(in.Content),
		PostID:  in.PostID,
		UserID:  user.ID,
		User:    *user,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return models.NewCommentView(comment), nil
}

// Update replaces a comment's content and marks it edited.
func (s *CommentService) Update(ctx context.Context, in UpdateCommentInput) (*models.CommentView, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	comment.Content = strings.TrimSpace(in.Content)
	comment.Edited = true
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return models.NewCommentView(comment), nil
}

// ListForPost returns a post's comments, newest first. A missing post is
// NOT_FOUND; a post with no comments is an empty slice, so callers can
// tell the two apart.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return models.NewCommentViews(comments), nil
}

// UpVote increments the comment's vote tally.
func (s *CommentService) UpVote(ctx context.Context, id uint) error {
	return s.commentRepo.AdjustVotes(ctx, id, 1)
}

// DownVote decrements the comment's vote tally. The tally may go negative.
func (s *CommentService) DownVote(ctx context.Context, id uint) error {
	return s.commentRepo.AdjustVotes(ctx, id, -1)
}
