package service

import (
	"context"
	"testing"

	"huddle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the repository interfaces. Each noop
// constructor returns a stub whose fields can be overridden per test.

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	softDeleteFn func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SoftDelete(ctx context.Context, id uint) error {
	return s.softDeleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "marla", Email: "marla@example.com"}, nil
		},
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Username: "marla", Email: email}, nil
		},
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		softDeleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

type communityRepoStub struct {
	createFn     func(context.Context, *models.Community) error
	getByIDFn    func(context.Context, uint) (*models.Community, error)
	getByNameFn  func(context.Context, string) (*models.Community, error)
	listFn       func(context.Context, int, int) ([]models.Community, error)
	softDeleteFn func(context.Context, *models.Community) error
}

func (s *communityRepoStub) Create(ctx context.Context, community *models.Community) error {
	return s.createFn(ctx, community)
}
func (s *communityRepoStub) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	return s.getByIDFn(ctx, id)
}
func (s *communityRepoStub) GetByName(ctx context.Context, name string) (*models.Community, error) {
	return s.getByNameFn(ctx, name)
}
func (s *communityRepoStub) List(ctx context.Context, limit, offset int) ([]models.Community, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *communityRepoStub) SoftDelete(ctx context.Context, community *models.Community) error {
	return s.softDeleteFn(ctx, community)
}

func noopCommunityRepo() *communityRepoStub {
	return &communityRepoStub{
		createFn: func(_ context.Context, _ *models.Community) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Community, error) {
			return &models.Community{ID: id, Name: "gophers", CreatorID: 1}, nil
		},
		getByNameFn: func(_ context.Context, name string) (*models.Community, error) {
			return &models.Community{ID: 3, Name: name, CreatorID: 1}, nil
		},
		listFn:       func(_ context.Context, _, _ int) ([]models.Community, error) { return nil, nil },
		softDeleteFn: func(_ context.Context, _ *models.Community) error { return nil },
	}
}

type membershipRepoStub struct {
	addFn    func(context.Context, uint, uint) (bool, error)
	existsFn func(context.Context, uint, uint) (bool, error)
	listFn   func(context.Context, uint) ([]uint, error)
}

func (s *membershipRepoStub) Add(ctx context.Context, communityID, userID uint) (bool, error) {
	return s.addFn(ctx, communityID, userID)
}
func (s *membershipRepoStub) Exists(ctx context.Context, communityID, userID uint) (bool, error) {
	return s.existsFn(ctx, communityID, userID)
}
func (s *membershipRepoStub) ListCommunityIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	return s.listFn(ctx, userID)
}

func noopMembershipRepo() *membershipRepoStub {
	return &membershipRepoStub{
		addFn:    func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		existsFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listFn:   func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	listByCommunityFn func(context.Context, uint) ([]*models.Post, error)
	listByUserFn      func(context.Context, uint) ([]*models.Post, error)
	listFn            func(context.Context, int, int) ([]*models.Post, error)
	listAllFn         func(context.Context) ([]*models.Post, error)
	deleteFn          func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByCommunity(ctx context.Context, communityID uint) ([]*models.Post, error) {
	return s.listByCommunityFn(ctx, communityID)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListAll(ctx context.Context) ([]*models.Post, error) {
	return s.listAllFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, Title: "hello", Content: "world"}, nil
		},
		listByCommunityFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserFn:      func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listFn:            func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		listAllFn:         func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	updateFn      func(context.Context, *models.Comment) error
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	adjustVotesFn func(context.Context, uint, int) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) AdjustVotes(ctx context.Context, id uint, delta int) error {
	return s.adjustVotesFn(ctx, id, delta)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		updateFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		adjustVotesFn: func(_ context.Context, _ uint, _ int) error { return nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
