package model

import (
	"time"
)

// Reaction holds at most one row per (user, post); a second reaction
// overwrites the emoji instead of adding a row.
type Reaction struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	PostID    uint64    `gorm:"primaryKey;index:idx_reaction_post_id" json:"post_id"`
	Emoji     string    `gorm:"type:varchar(32);not null" json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Reaction) TableName() string {
	return "reactions"
}
