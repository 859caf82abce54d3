package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ThemeRepo interface {
	ListThemes(ctx context.Context) ([]*model.Theme, error)
	GetTheme(ctx context.Context, id uint64) (*model.Theme, error)
	UpdateTheme(ctx context.Context, theme *model.Theme) error
}

type ThemeRepoImpl struct {
	db *gorm.DB
}

func NewThemeRepo(db *gorm.DB) ThemeRepo {
	return &ThemeRepoImpl{db}
}

func (s *ThemeRepoImpl) ListThemes(ctx context.Context) ([]*model.Theme, error) {
	var themes []*model.Theme
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&themes).Error
	return themes, err
}

func (s *ThemeRepoImpl) GetTheme(ctx context.Context, id uint64) (*model.Theme, error) {
	var theme model.Theme
	err := s.db.WithContext(ctx).First(&theme, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &theme, nil
}

// UpdateTheme saves the theme; activating one deactivates every other theme
// inside the same transaction so at most one stays active.
func (s *ThemeRepoImpl) UpdateTheme(ctx context.Context, theme *model.Theme) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if theme.IsActive {
			if err := tx.Model(&model.Theme{}).
				Where("is_active = ? AND id <> ?", true, theme.ID).
				UpdateColumn("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Theme{}).Where("id = ?", theme.ID).
			Updates(map[string]interface{}{
				"name":             theme.Name,
				"primary_color":    theme.PrimaryColor,
				"secondary_color":  theme.SecondaryColor,
				"background_color": theme.BackgroundColor,
				"text_color":       theme.TextColor,
				"is_active":        theme.IsActive,
			}).Error
	})
}
