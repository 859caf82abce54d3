package model

import (
	"time"
)

type Theme struct {
	ID              uint64    `gorm:"primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	PrimaryColor    string    `gorm:"type:varchar(20);not null" json:"primary_color"`
	SecondaryColor  string    `gorm:"type:varchar(20);not null" json:"secondary_color"`
	BackgroundColor string    `gorm:"type:varchar(20);not null" json:"background_color"`
	TextColor       string    `gorm:"type:varchar(20);not null" json:"text_color"`
	IsActive        bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Theme) TableName() string {
	return "themes"
}
