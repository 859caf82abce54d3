package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc service.UserService
}

func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{
		userSvc: userSvc,
	}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBindJSON(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (s *AuthHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBindJSON(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, token)
}

func (s *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Me 返回当前登录用户
func (s *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint64("user_id")

	user, err := s.userSvc.GetUserById(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
