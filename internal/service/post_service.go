package service

import (
	"context"
	"strings"

	"huddle/internal/models"
	"huddle/internal/repository"
	"huddle/internal/validation"
)

type PostService struct {
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository
}

type CreatePostInput struct {
	Title         string
	Content       string
	UserID        uint
	CommunityName string
	Image         *ImageUpload
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	communityRepo repository.CommunityRepository,
) *PostService {
	return &PostService{
		postRepo:      postRepo,
		userRepo:      userRepo,
		communityRepo: communityRepo,
	}
}

// Create persists a new post. Both the author and the community must
// exist; a dangling reference is NOT_FOUND, never a silent FK failure.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.PostView, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	community, err := s.communityRepo.GetByName(ctx, strings.TrimSpace(in.CommunityName))
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		UserID:      user.ID,
		User:        *user,
		CommunityID: community.ID,
		Community:   community,
	}

	if in.Image != nil {
		img, err := processImage(in.Image, postImageMaxEdge)
		if err != nil {
			return nil, err
		}
		post.ImageName = img.Name
		post.ImageType = img.ContentType
		post.Image = img.Data
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return models.NewPostView(post), nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.NewPostView(post), nil
}

// ListByCommunity returns the community's posts, newest first. The
// community must exist; an empty community yields an empty slice.
func (s *PostService) ListByCommunity(ctx context.Context, name string) ([]*models.PostView, error) {
	community, err := s.communityRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByCommunity(ctx, community.ID)
	if err != nil {
		return nil, err
	}
	return models.NewPostViews(posts), nil
}

// ListByUser returns the posts authored by the user with the given email.
func (s *PostService) ListByUser(ctx context.Context, email string) ([]*models.PostView, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return models.NewPostViews(posts), nil
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]*models.PostView, error) {
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewPostViews(posts), nil
}

// Delete removes the post row permanently.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}
