package models

import "time"

// Membership is the explicit join row between a user and a community.
// The composite unique index makes re-joining a no-op to detect rather
// than a second row.
type Membership struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommunityID uint      `gorm:"not null;index;uniqueIndex:uk_membership_community_user" json:"community_id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:uk_membership_community_user" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "memberships"
}
