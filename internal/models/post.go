package models

import "time"

// Post represents content published into a community. Posts are
// hard-deleted; the row is removed outright.
type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"type:text" json:"content"`
	ImageName   string     `json:"image_name,omitempty"`
	ImageType   string     `json:"image_type,omitempty"`
	Image       []byte     `gorm:"type:bytea" json:"-"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CommunityID uint       `gorm:"not null;index" json:"community_id"`
	Community   *Community `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Comments    []Comment  `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
