package service_test

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("register stores a hashed password", func(t *testing.T) {
		user, err := env.userSvc.Register(ctx, &dto.RegisterDTO{
			Username: "carol",
			Password: "super-secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
		assert.False(t, user.IsAdmin)

		stored, err := env.userRepo.GetUserByUsername(ctx, "carol")
		require.NoError(t, err)
		assert.NotEqual(t, "super-secret", stored.Password)
		assert.NoError(t, security.CheckPasswordHash("super-secret", stored.Password))
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := env.userSvc.Register(ctx, &dto.RegisterDTO{
			Username: "carol",
			Password: "another-secret",
		})
		assert.ErrorIs(t, err, service.ErrUserUsernameExist)
	})

	t.Run("login issues a token for valid credentials", func(t *testing.T) {
		token, err := env.userSvc.Login(ctx, &dto.CredentialDTO{
			Username: "carol",
			Password: "super-secret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)
		assert.Equal(t, "carol", token.User.Username)

		claims, err := security.ValidateToken(token.Token)
		require.NoError(t, err)
		assert.Equal(t, token.User.ID, claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := env.userSvc.Login(ctx, &dto.CredentialDTO{
			Username: "carol",
			Password: "guess",
		})
		assert.ErrorIs(t, err, service.ErrPasswordIncorrect)
	})

	t.Run("unknown user gets the same rejection", func(t *testing.T) {
		_, err := env.userSvc.Login(ctx, &dto.CredentialDTO{
			Username: "nobody",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, service.ErrPasswordIncorrect)
	})
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedUser(t, env, "admin", true)
	seedUser(t, env, "alice", false)
	seedUser(t, env, "bob", false)

	users, err := env.userSvc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.False(t, u.IsAdmin)
	}
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	alice := seedUser(t, env, "alice", false)
	bob := seedUser(t, env, "bob", false)
	post := seedPost(t, env, author.ID, "shared post")

	require.NoError(t, env.engagementSvc.RecordView(ctx, alice.ID, post.ID))
	require.NoError(t, env.engagementSvc.RecordView(ctx, bob.ID, post.ID))
	_, err := env.engagementSvc.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	_, err = env.engagementSvc.SetReaction(ctx, alice.ID, post.ID, "🔥")
	require.NoError(t, err)
	_, err = env.engagementSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
		PostID:  post.ID,
		Message: "mine soon gone",
	})
	require.NoError(t, err)

	require.NoError(t, env.userSvc.DeleteUser(ctx, alice.ID))

	t.Run("account is gone", func(t *testing.T) {
		user, err := env.userRepo.GetUserById(ctx, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("engagement rows are cascaded", func(t *testing.T) {
		for _, m := range []interface{}{&model.PostView{}, &model.Like{}, &model.Reaction{}, &model.Comment{}} {
			var rows int64
			require.NoError(t, env.db.Model(m).Where("user_id = ?", alice.ID).Count(&rows).Error)
			assert.EqualValues(t, 0, rows)
		}
	})

	t.Run("post counters are re-derived", func(t *testing.T) {
		refreshed := loadPost(t, env, post.ID)
		assert.Equal(t, 1, refreshed.ViewCount)
		assert.Equal(t, 0, refreshed.LikeCount)
		assert.Equal(t, 0, refreshed.CommentCount)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := env.userSvc.DeleteUser(ctx, alice.ID)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
