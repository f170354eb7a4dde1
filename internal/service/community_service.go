package service

import (
	"context"
	"strings"

	"huddle/internal/models"
	"huddle/internal/repository"
	"huddle/internal/validation"
)

// JoinStatus reports the outcome of a join request.
type JoinStatus string

const (
	JoinStatusJoined        JoinStatus = "joined"
	JoinStatusAlreadyMember JoinStatus = "already_member"
)

type CommunityService struct {
	communityRepo  repository.CommunityRepository
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
}

type CreateCommunityInput struct {
	Name         string
	Description  string
	CreatorEmail string
}

func NewCommunityService(
	communityRepo repository.CommunityRepository,
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
) *CommunityService {
	return &CommunityService{
		communityRepo:  communityRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
	}
}

// Create registers a new community. The creator is not enrolled as a
// member; membership is always an explicit join.
func (s *CommunityService) Create(ctx context.Context, in CreateCommunityInput) (*models.CommunityView, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.ValidateCommunityName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	creator, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(in.CreatorEmail))
	if err != nil {
		return nil, err
	}

	community := &models.Community{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		CreatorID:   creator.ID,
		Creator:     *creator,
	}
	if err := s.communityRepo.Create(ctx, community); err != nil {
		return nil, err
	}
	return models.NewCommunityView(community), nil
}

// Join enrolls the user identified by email into the named community.
// Re-joining is idempotent and reported as already_member.
func (s *CommunityService) Join(ctx context.Context, email, name string) (JoinStatus, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	community, err := s.communityRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return "", err
	}

	created, err := s.membershipRepo.Add(ctx, community.ID, user.ID)
	if err != nil {
		return "", err
	}
	if !created {
		return JoinStatusAlreadyMember, nil
	}
	return JoinStatusJoined, nil
}

// Delete soft-deletes a community. Only the creator may delete it; anyone
// else gets FORBIDDEN, which is distinct from the community not existing.
func (s *CommunityService) Delete(ctx context.Context, email, name string) error {
	community, err := s.communityRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if community.CreatorID != user.ID {
		return models.NewForbiddenError("Only the creator can delete this community")
	}
	return s.communityRepo.SoftDelete(ctx, community)
}

func (s *CommunityService) Details(ctx context.Context, name string) (*models.CommunityView, error) {
	community, err := s.communityRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return models.NewCommunityView(community), nil
}

func (s *CommunityService) List(ctx context.Context, limit, offset int) ([]*models.CommunityView, error) {
	communities, err := s.communityRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewCommunityViews(communities), nil
}
