package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.GET("/me", group.AuthHandler.Me)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			// 未登录可读，登录后 GetPost 记一次浏览
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
			}

			loggedGroup := postGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.PUT("/like/:post_id", group.EngagementHandler.ToggleLike)
				loggedGroup.POST("/:post_id/react", group.EngagementHandler.React)
				loggedGroup.GET("/:post_id/state", group.EngagementHandler.GetEngagementState)
			}

			// 发帖编辑删帖仅限管理员（单作者博客）
			adminGroup := loggedGroup.Group("")
			adminGroup.Use(middleware.RequireAdmin())
			{
				adminGroup.POST("", group.PostHandler.CreatePost)
				adminGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				adminGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/:post_id", group.CommentHandler.ListComments)

			loggedGroup := commentGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.CommentHandler.CreateComment)
			}
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			analyticsGroup.GET("", group.AnalyticsHandler.GetSummary)
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			userGroup.GET("", group.UserHandler.ListUsers)
			userGroup.GET("/:user_id", group.UserHandler.GetUser)
			userGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
		}

		themeGroup := apiGroup.Group("/themes")
		{
			themeGroup.GET("", group.ThemeHandler.ListThemes)

			adminGroup := themeGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
			{
				adminGroup.PUT("/:theme_id", group.ThemeHandler.UpdateTheme)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
