package service_test

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	reader := seedUser(t, env, "reader", false)
	post := seedPost(t, env, author.ID, "first post")

	t.Run("first view counts", func(t *testing.T) {
		require.NoError(t, env.engagementSvc.RecordView(ctx, reader.ID, post.ID))

		assert.Equal(t, 1, loadPost(t, env, post.ID).ViewCount)
	})

	t.Run("repeat view is silently ignored", func(t *testing.T) {
		require.NoError(t, env.engagementSvc.RecordView(ctx, reader.ID, post.ID))
		require.NoError(t, env.engagementSvc.RecordView(ctx, reader.ID, post.ID))

		assert.Equal(t, 1, loadPost(t, env, post.ID).ViewCount)

		var rows int64
		require.NoError(t, env.db.Model(&model.PostView{}).
			Where("post_id = ?", post.ID).Count(&rows).Error)
		assert.EqualValues(t, 1, rows)
	})

	t.Run("second viewer counts again", func(t *testing.T) {
		other := seedUser(t, env, "other-reader", false)
		require.NoError(t, env.engagementSvc.RecordView(ctx, other.ID, post.ID))

		assert.Equal(t, 2, loadPost(t, env, post.ID).ViewCount)
	})

	t.Run("unknown post", func(t *testing.T) {
		err := env.engagementSvc.RecordView(ctx, reader.ID, 9999)
		assert.ErrorIs(t, err, service.ErrPostNotFound)
	})
}

func TestToggleLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	alice := seedUser(t, env, "alice", false)
	bob := seedUser(t, env, "bob", false)
	post := seedPost(t, env, author.ID, "likeable post")

	t.Run("like then unlike returns to the initial state", func(t *testing.T) {
		res, err := env.engagementSvc.ToggleLike(ctx, alice.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.EqualValues(t, 1, res.LikeCount)

		res, err = env.engagementSvc.ToggleLike(ctx, alice.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.EqualValues(t, 0, res.LikeCount)

		assert.Equal(t, 0, loadPost(t, env, post.ID).LikeCount)
	})

	t.Run("likes from different users accumulate", func(t *testing.T) {
		_, err := env.engagementSvc.ToggleLike(ctx, alice.ID, post.ID)
		require.NoError(t, err)

		res, err := env.engagementSvc.ToggleLike(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.EqualValues(t, 2, res.LikeCount)

		// bob withdraws, alice's like survives
		res, err = env.engagementSvc.ToggleLike(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.EqualValues(t, 1, res.LikeCount)

		state, err := env.engagementSvc.GetEngagementState(ctx, alice.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, state.IsLiked)

		state, err = env.engagementSvc.GetEngagementState(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, state.IsLiked)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := env.engagementSvc.ToggleLike(ctx, alice.ID, 9999)
		assert.ErrorIs(t, err, service.ErrPostNotFound)
	})
}

func TestSetReaction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	alice := seedUser(t, env, "alice", false)
	bob := seedUser(t, env, "bob", false)
	post := seedPost(t, env, author.ID, "reactive post")

	t.Run("empty emoji is rejected", func(t *testing.T) {
		_, err := env.engagementSvc.SetReaction(ctx, alice.ID, post.ID, "   ")
		assert.ErrorIs(t, err, service.ErrEmojiRequired)
	})

	t.Run("first reaction inserts a row", func(t *testing.T) {
		reaction, err := env.engagementSvc.SetReaction(ctx, alice.ID, post.ID, "🔥")
		require.NoError(t, err)
		assert.Equal(t, "🔥", reaction.Emoji)
		assert.Equal(t, alice.ID, reaction.UserID)
	})

	t.Run("second reaction overwrites instead of adding", func(t *testing.T) {
		reaction, err := env.engagementSvc.SetReaction(ctx, alice.ID, post.ID, "🎉")
		require.NoError(t, err)
		assert.Equal(t, "🎉", reaction.Emoji)

		var rows int64
		require.NoError(t, env.db.Model(&model.Reaction{}).
			Where("post_id = ?", post.ID).Count(&rows).Error)
		assert.EqualValues(t, 1, rows)
	})

	t.Run("overwrite refreshes updated_at", func(t *testing.T) {
		before, err := env.engagementRepo.GetReaction(ctx, alice.ID, post.ID)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = env.engagementSvc.SetReaction(ctx, alice.ID, post.ID, "🎉")
		require.NoError(t, err)

		after, err := env.engagementRepo.GetReaction(ctx, alice.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
	})

	t.Run("reactions are independent per user", func(t *testing.T) {
		_, err := env.engagementSvc.SetReaction(ctx, bob.ID, post.ID, "👍")
		require.NoError(t, err)

		var rows int64
		require.NoError(t, env.db.Model(&model.Reaction{}).
			Where("post_id = ?", post.ID).Count(&rows).Error)
		assert.EqualValues(t, 2, rows)

		stored, err := env.engagementRepo.GetReaction(ctx, alice.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "🎉", stored.Emoji)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := env.engagementSvc.SetReaction(ctx, alice.ID, 9999, "🔥")
		assert.ErrorIs(t, err, service.ErrPostNotFound)
	})
}

func TestComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	alice := seedUser(t, env, "alice", false)
	post := seedPost(t, env, author.ID, "discussed post")

	t.Run("empty message is rejected", func(t *testing.T) {
		_, err := env.engagementSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
			PostID:  post.ID,
			Message: "  ",
		})
		assert.ErrorIs(t, err, service.ErrMessageRequired)
	})

	t.Run("comments append and bump the counter", func(t *testing.T) {
		first, err := env.engagementSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
			PostID:  post.ID,
			Message: "first!",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", first.Username)

		// keep created_at strictly ordered for the listing assertion
		time.Sleep(10 * time.Millisecond)

		_, err = env.engagementSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
			PostID:  post.ID,
			Message: "second thoughts",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, loadPost(t, env, post.ID).CommentCount)
	})

	t.Run("listing is newest first with author names", func(t *testing.T) {
		comments, err := env.engagementSvc.GetCommentsByPostID(ctx, post.ID, 1, 20)
		require.NoError(t, err)
		require.Len(t, comments, 2)

		assert.Equal(t, "second thoughts", comments[0].Message)
		assert.Equal(t, "first!", comments[1].Message)
		assert.Equal(t, "alice", comments[0].Username)
	})

	t.Run("pagination slices the tail", func(t *testing.T) {
		comments, err := env.engagementSvc.GetCommentsByPostID(ctx, post.ID, 2, 1)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "first!", comments[0].Message)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := env.engagementSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
			PostID:  9999,
			Message: "into the void",
		})
		assert.ErrorIs(t, err, service.ErrPostNotFound)
	})
}

func TestGetEngagementState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	alice := seedUser(t, env, "alice", false)
	bob := seedUser(t, env, "bob", false)
	post := seedPost(t, env, author.ID, "busy post")

	require.NoError(t, env.engagementSvc.RecordView(ctx, alice.ID, post.ID))
	require.NoError(t, env.engagementSvc.RecordView(ctx, bob.ID, post.ID))
	_, err := env.engagementSvc.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	_, err = env.engagementSvc.SetReaction(ctx, bob.ID, post.ID, "👀")
	require.NoError(t, err)
	_, err = env.engagementSvc.CreateComment(ctx, bob.ID, &dto.CommentCreateDTO{
		PostID:  post.ID,
		Message: "interesting",
	})
	require.NoError(t, err)

	state, err := env.engagementSvc.GetEngagementState(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, state.ViewCount)
	assert.EqualValues(t, 1, state.LikeCount)
	assert.EqualValues(t, 1, state.CommentCount)
	assert.EqualValues(t, 1, state.ReactionCount)
	assert.True(t, state.IsLiked)

	state, err = env.engagementSvc.GetEngagementState(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, state.IsLiked)
}

// A broken store must surface as an error, not as a state full of zeroes.
func TestGetEngagementStateStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := seedUser(t, env, "author", true)
	alice := seedUser(t, env, "alice", false)
	post := seedPost(t, env, author.ID, "fragile post")

	require.NoError(t, env.db.Migrator().DropTable(&model.Like{}))

	_, err := env.engagementSvc.GetEngagementState(ctx, alice.ID, post.ID)
	assert.Error(t, err)
}
