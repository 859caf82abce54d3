package job_test

import (
	"Inkwell/internal/job"
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.PostView{},
		&model.Like{},
		&model.Comment{},
	))
	return db
}

// ReconcilePost must restore the denormalized counters from the detail rows
// no matter how far they have drifted.
func TestReconcilePost(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	post := &model.Post{
		AuthorID: 1,
		Title:    "drifted",
		Content:  "counters out of step",
		// drifted on purpose
		ViewCount:    42,
		LikeCount:    0,
		CommentCount: 7,
	}
	require.NoError(t, db.Create(post).Error)

	require.NoError(t, db.Create(&model.PostView{UserID: 1, PostID: post.ID, ViewedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.PostView{UserID: 2, PostID: post.ID, ViewedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: 1, PostID: post.ID, CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.Comment{UserID: 2, PostID: post.ID, Message: "still here"}).Error)

	syncJob := job.NewCounterSyncJob(repository.NewEngagementRepo(db))
	require.NoError(t, syncJob.ReconcilePost(ctx, post.ID))

	var refreshed model.Post
	require.NoError(t, db.First(&refreshed, post.ID).Error)
	assert.Equal(t, 2, refreshed.ViewCount)
	assert.Equal(t, 1, refreshed.LikeCount)
	assert.Equal(t, 1, refreshed.CommentCount)
}
