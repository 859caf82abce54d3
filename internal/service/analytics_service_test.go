package service_test

import (
	"Inkwell/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("empty store yields zeroes", func(t *testing.T) {
		summary, err := env.analyticsSvc.GetSummary(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 0, summary.TotalViews)
		assert.EqualValues(t, 0, summary.TotalLikes)
		assert.EqualValues(t, 0, summary.TotalComments)
	})

	t.Run("totals sum across posts", func(t *testing.T) {
		author := seedUser(t, env, "author", true)
		alice := seedUser(t, env, "alice", false)
		bob := seedUser(t, env, "bob", false)
		first := seedPost(t, env, author.ID, "first")
		second := seedPost(t, env, author.ID, "second")

		require.NoError(t, env.engagementSvc.RecordView(ctx, alice.ID, first.ID))
		require.NoError(t, env.engagementSvc.RecordView(ctx, bob.ID, first.ID))
		require.NoError(t, env.engagementSvc.RecordView(ctx, alice.ID, second.ID))

		_, err := env.engagementSvc.ToggleLike(ctx, alice.ID, first.ID)
		require.NoError(t, err)
		_, err = env.engagementSvc.ToggleLike(ctx, bob.ID, second.ID)
		require.NoError(t, err)

		_, err = env.engagementSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
			PostID:  second.ID,
			Message: "nice one",
		})
		require.NoError(t, err)

		summary, err := env.analyticsSvc.GetSummary(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, summary.TotalViews)
		assert.EqualValues(t, 2, summary.TotalLikes)
		assert.EqualValues(t, 1, summary.TotalComments)
	})

	t.Run("withdrawn like leaves the totals", func(t *testing.T) {
		alice, err := env.userRepo.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)

		posts, err := env.postRepo.ListPosts(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, posts)

		var likedID uint64
		for _, p := range posts {
			for _, l := range p.Likes {
				if l.UserID == alice.ID {
					likedID = p.ID
				}
			}
		}
		require.NotZero(t, likedID)

		res, err := env.engagementSvc.ToggleLike(ctx, alice.ID, likedID)
		require.NoError(t, err)
		require.False(t, res.Liked)

		summary, err := env.analyticsSvc.GetSummary(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, summary.TotalLikes)
	})
}
