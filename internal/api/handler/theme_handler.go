package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeSvc service.ThemeService
}

func NewThemeHandler(themeSvc service.ThemeService) *ThemeHandler {
	return &ThemeHandler{
		themeSvc: themeSvc,
	}
}

func (s *ThemeHandler) ListThemes(c *gin.Context) {
	themes, err := s.themeSvc.ListThemes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, themes)
}

func (s *ThemeHandler) UpdateTheme(c *gin.Context) {
	themeID, err := strconv.ParseUint(c.Param("theme_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ThemeUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	theme, err := s.themeSvc.UpdateTheme(c.Request.Context(), themeID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, theme)
}
