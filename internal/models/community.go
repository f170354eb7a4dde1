package models

import (
	"time"

	"gorm.io/gorm"
)

// Community represents a named space users can join and post into.
// Communities are soft-deleted like users.
type Community struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:120;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	CreatorID   uint   `gorm:"not null;index" json:"creator_id"`
	// Deleting a creator cascades to their communities; this is the one
	// cascade the schema makes explicit.
	Creator   User           `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:CommunityID" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM.
func (Community) TableName() string {
	return "communities"
}
