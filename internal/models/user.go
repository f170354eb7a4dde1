// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account in the Huddle application.
// Accounts are soft-deleted: DeletedAt is stamped and the row is retained,
// but default reads exclude it.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	// Phone is nullable so cleared phone numbers never collide on the
	// unique index.
	Phone      *string        `gorm:"uniqueIndex" json:"phone,omitempty"`
	AvatarName string         `json:"avatar_name,omitempty"`
	AvatarType string         `json:"avatar_type,omitempty"`
	Avatar     []byte         `gorm:"type:bytea" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Posts      []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments   []Comment      `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}
