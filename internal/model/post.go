package model

import (
	"time"
)

type Post struct {
	ID           uint64    `gorm:"primaryKey"`
	AuthorID     uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Content      string    `gorm:"not null" json:"content"`
	ViewCount    int       `gorm:"not null;default:0" json:"view_count"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Author        User           `gorm:"foreignKey:AuthorID;references:ID"`
	Illustrations []Illustration `gorm:"foreignKey:PostID;references:ID"`
	Likes         []Like         `gorm:"foreignKey:PostID;references:ID"`
	Reactions     []Reaction     `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
