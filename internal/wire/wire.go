package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/job"
	"Inkwell/internal/pkg/cron"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	engagementRepo := repository.NewEngagementRepo(db)
	userRepo := repository.NewUserRepo(db)
	themeRepo := repository.NewThemeRepo(db)

	postService := service.NewPostService(postRepo)
	engagementService := service.NewEngagementService(engagementRepo, postRepo, userRepo)
	analyticsService := service.NewAnalyticsService(engagementRepo)
	userService := service.NewUserService(userRepo, engagementRepo)
	themeService := service.NewThemeService(themeRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(userService),
		PostHandler:       handler.NewPostHandler(postService, engagementService),
		EngagementHandler: handler.NewEngagementHandler(engagementService),
		CommentHandler:    handler.NewCommentHandler(engagementService),
		AnalyticsHandler:  handler.NewAnalyticsHandler(analyticsService),
		UserHandler:       handler.NewUserHandler(userService),
		ThemeHandler:      handler.NewThemeHandler(themeService),
		MediaHandler:      handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	counterSyncJob := job.NewCounterSyncJob(engagementRepo)
	cronMgr := cron.NewCronManager(counterSyncJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
