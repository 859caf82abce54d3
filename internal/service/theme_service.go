package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type ThemeService interface {
	ListThemes(ctx context.Context) ([]*dto.ThemeDTO, error)
	UpdateTheme(ctx context.Context, id uint64, req *dto.ThemeUpdateDTO) (*dto.ThemeDTO, error)
}

type themeServiceImpl struct {
	themeRepo repository.ThemeRepo
}

func NewThemeService(themeRepo repository.ThemeRepo) ThemeService {
	return &themeServiceImpl{themeRepo: themeRepo}
}

func (s *themeServiceImpl) ListThemes(ctx context.Context) ([]*dto.ThemeDTO, error) {
	themes, err := s.themeRepo.ListThemes(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ThemeDTO, 0, len(themes))
	for _, t := range themes {
		item := &dto.ThemeDTO{}
		_ = copier.Copy(item, t)
		res = append(res, item)
	}
	return res, nil
}

func (s *themeServiceImpl) UpdateTheme(ctx context.Context, id uint64, req *dto.ThemeUpdateDTO) (*dto.ThemeDTO, error) {
	existing, err := s.themeRepo.GetTheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrThemeNotFound
	}

	theme := &model.Theme{ID: id}
	_ = copier.Copy(theme, req)

	if err := s.themeRepo.UpdateTheme(ctx, theme); err != nil {
		return nil, err
	}

	updated, err := s.themeRepo.GetTheme(ctx, id)
	if err != nil {
		return nil, err
	}
	item := &dto.ThemeDTO{}
	_ = copier.Copy(item, updated)
	return item, nil
}
