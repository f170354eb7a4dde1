package repository

import (
	"context"
	"errors"

	"huddle/internal/cache"
	"huddle/internal/models"

	"gorm.io/gorm"
)

// CommunityRepository defines persistence operations for communities.
type CommunityRepository interface {
	Create(ctx context.Context, community *models.Community) error
	GetByID(ctx context.Context, id uint) (*models.Community, error)
	GetByName(ctx context.Context, name string) (*models.Community, error)
	List(ctx context.Context, limit, offset int) ([]models.Community, error)
	SoftDelete(ctx context.Context, community *models.Community) error
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository returns a new CommunityRepository implementation.
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *models.Community) error {
	if err := r.db.WithContext(ctx).Create(community).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A community with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *communityRepository) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	var community models.Community
	if err := r.db.WithContext(ctx).Preload("Creator").First(&community, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Community", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &community, nil
}

func (r *communityRepository) GetByName(ctx context.Context, name string) (*models.Community, error) {
	var community models.Community
	key := cache.CommunityKey(name)

	err := cache.Aside(ctx, key, &community, cache.CommunityTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Creator").Where("name = ?", name).First(&community).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Community", name)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) List(ctx context.Context, limit, offset int) ([]models.Community, error) {
	var communities []models.Community
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&communities).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return communities, nil
}

func (r *communityRepository) SoftDelete(ctx context.Context, community *models.Community) error {
	if err := r.db.WithContext(ctx).Delete(&models.Community{}, community.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.CommunityKey(community.Name))
	return nil
}
