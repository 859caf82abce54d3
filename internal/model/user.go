package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Password  string    `gorm:"type:varchar(255);not null"`
	IsAdmin   bool      `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
