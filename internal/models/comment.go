package models

import "time"

// Comment represents a comment on a post. Votes is a plain signed tally
// with no floor or ceiling. Comments are hard-deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	Edited    bool      `gorm:"not null;default:false" json:"edited"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
