package dto

// ThemeDTO 主题
type ThemeDTO struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	IsActive        bool   `json:"is_active"`
}

// ThemeUpdateDTO 主题修改
type ThemeUpdateDTO struct {
	Name            string `json:"name" binding:"required" validate:"min=1,max=100"`
	PrimaryColor    string `json:"primary_color" binding:"required"`
	SecondaryColor  string `json:"secondary_color" binding:"required"`
	BackgroundColor string `json:"background_color" binding:"required"`
	TextColor       string `json:"text_color" binding:"required"`
	IsActive        bool   `json:"is_active"`
}
