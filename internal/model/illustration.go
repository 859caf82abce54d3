package model

import (
	"time"
)

type Illustration struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PostID     uint64    `gorm:"not null;index:idx_post_id_sort,unique" json:"post_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ObjectName string    `gorm:"type:varchar(512);not null;default:''" json:"object_name"`
	SortOrder  int       `gorm:"not null;default:0;index:idx_post_id_sort,unique" json:"sort_order"` // 1-based
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Illustration) TableName() string {
	return "illustrations"
}
