package api

import "Inkwell/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	PostHandler       *handler.PostHandler
	EngagementHandler *handler.EngagementHandler
	CommentHandler    *handler.CommentHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	UserHandler       *handler.UserHandler
	ThemeHandler      *handler.ThemeHandler
	MediaHandler      *handler.MediaHandler
}
