package service_test

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db             *gorm.DB
	postRepo       repository.PostRepo
	engagementRepo repository.EngagementRepo
	userRepo       repository.UserRepo
	themeRepo      repository.ThemeRepo

	postSvc       service.PostService
	engagementSvc service.EngagementService
	analyticsSvc  service.AnalyticsService
	userSvc       service.UserService
	themeSvc      service.ThemeService
}

// newTestEnv wires the whole service stack over an in-memory sqlite store.
// TranslateError makes duplicate-key detection behave like production mysql.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would get its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Illustration{},
		&model.PostView{},
		&model.Like{},
		&model.Reaction{},
		&model.Comment{},
		&model.Theme{},
	))

	postRepo := repository.NewPostRepository(db)
	engagementRepo := repository.NewEngagementRepo(db)
	userRepo := repository.NewUserRepo(db)
	themeRepo := repository.NewThemeRepo(db)

	return &testEnv{
		db:             db,
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		userRepo:       userRepo,
		themeRepo:      themeRepo,
		postSvc:        service.NewPostService(postRepo),
		engagementSvc:  service.NewEngagementService(engagementRepo, postRepo, userRepo),
		analyticsSvc:   service.NewAnalyticsService(engagementRepo),
		userSvc:        service.NewUserService(userRepo, engagementRepo),
		themeSvc:       service.NewThemeService(themeRepo),
	}
}

func seedUser(t *testing.T, env *testEnv, username string, isAdmin bool) *model.User {
	t.Helper()

	hash, err := security.HashPassword("secret-password")
	require.NoError(t, err)

	user := &model.User{Username: username, Password: hash, IsAdmin: isAdmin}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, env *testEnv, authorID uint64, title string) *model.Post {
	t.Helper()

	post := &model.Post{
		AuthorID:  authorID,
		Title:     title,
		Content:   "body of " + title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, env.db.Create(post).Error)
	return post
}

func loadPost(t *testing.T, env *testEnv, id uint64) *model.Post {
	t.Helper()

	var post model.Post
	require.NoError(t, env.db.First(&post, id).Error)
	return &post
}
