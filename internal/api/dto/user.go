package dto

import "time"

// UserDTO 用户公开信息，永远不携带密码哈希
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

// TokenDTO 登录结果
type TokenDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
