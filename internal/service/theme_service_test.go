package service_test

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTheme(t *testing.T, env *testEnv, name string, active bool) *model.Theme {
	t.Helper()

	theme := &model.Theme{
		Name:            name,
		PrimaryColor:    "#1a1a2e",
		SecondaryColor:  "#16213e",
		BackgroundColor: "#ffffff",
		TextColor:       "#0f0f0f",
		IsActive:        active,
	}
	require.NoError(t, env.db.Create(theme).Error)
	return theme
}

func TestThemes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dark := seedTheme(t, env, "dark", true)
	light := seedTheme(t, env, "light", false)

	t.Run("list returns every theme", func(t *testing.T) {
		themes, err := env.themeSvc.ListThemes(ctx)
		require.NoError(t, err)
		assert.Len(t, themes, 2)
	})

	t.Run("activating one theme deactivates the rest", func(t *testing.T) {
		updated, err := env.themeSvc.UpdateTheme(ctx, light.ID, &dto.ThemeUpdateDTO{
			Name:            "light",
			PrimaryColor:    "#fafafa",
			SecondaryColor:  "#e0e0e0",
			BackgroundColor: "#ffffff",
			TextColor:       "#222222",
			IsActive:        true,
		})
		require.NoError(t, err)
		assert.True(t, updated.IsActive)
		assert.Equal(t, "#fafafa", updated.PrimaryColor)

		former, err := env.themeRepo.GetTheme(ctx, dark.ID)
		require.NoError(t, err)
		assert.False(t, former.IsActive)

		var active int64
		require.NoError(t, env.db.Model(&model.Theme{}).
			Where("is_active = ?", true).Count(&active).Error)
		assert.EqualValues(t, 1, active)
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := env.themeSvc.UpdateTheme(ctx, 9999, &dto.ThemeUpdateDTO{
			Name:            "ghost",
			PrimaryColor:    "#000",
			SecondaryColor:  "#000",
			BackgroundColor: "#000",
			TextColor:       "#000",
		})
		assert.ErrorIs(t, err, service.ErrThemeNotFound)
	})
}
