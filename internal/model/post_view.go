package model

import (
	"time"
)

// PostView is the dedup row: its existence means the user has already been
// counted as a viewer of the post.
type PostView struct {
	UserID   uint64    `gorm:"primaryKey" json:"user_id"`
	PostID   uint64    `gorm:"primaryKey;index:idx_view_post_id" json:"post_id"`
	ViewedAt time.Time `gorm:"not null" json:"viewed_at"`
}

func (PostView) TableName() string {
	return "post_views"
}
