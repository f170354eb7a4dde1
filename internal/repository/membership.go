package repository

import (
	"context"

	"huddle/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository manages the user/community join rows.
type MembershipRepository interface {
	// Add enrolls a user into a community. Returns false when the user was
	// already a member. The insert is a single statement guarded by the
	// composite unique index, so a join never leaves half-applied state.
	Add(ctx context.Context, communityID, userID uint) (created bool, err error)
	Exists(ctx context.Context, communityID, userID uint) (bool, error)
	ListCommunityIDsForUser(ctx context.Context, userID uint) ([]uint, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository returns a new MembershipRepository implementation.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Add(ctx context.Context, communityID, userID uint) (bool, error) {
	membership := models.Membership{
		CommunityID: communityID,
		UserID:      userID,
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&membership)
	if tx.Error != nil {
		return false, models.NewInternalError(tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *membershipRepository) Exists(ctx context.Context, communityID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *membershipRepository) ListCommunityIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("user_id = ?", userID).
		Pluck("community_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
