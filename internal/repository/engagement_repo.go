package repository

import (
	"Inkwell/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type EngagementRepo interface {
	CreateView(ctx context.Context, view *model.PostView) error
	ToggleLike(ctx context.Context, userID, postID uint64) (bool, int64, error)
	UpsertReaction(ctx context.Context, reaction *model.Reaction) error
	GetReaction(ctx context.Context, userID, postID uint64) (*model.Reaction, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error)

	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetViewCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetReactionCountByPostID(ctx context.Context, postID uint64) (int64, error)

	SumViewCounts(ctx context.Context) (int64, error)
	SumLikeCounts(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)

	GetPostIDsEngagedByUser(ctx context.Context, userID uint64) ([]uint64, error)
	SyncPostCounters(ctx context.Context, postID uint64) error
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db}
}

// CreateView inserts the dedup row and bumps the post counter in one
// transaction. A duplicate-key error from the composite primary key rolls the
// whole thing back; the caller decides whether that is benign.
func (s *EngagementRepoImpl) CreateView(ctx context.Context, view *model.PostView) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(view).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("id = ?", view.PostID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
}

// ToggleLike flips the like row for (user, post) and keeps like_count in step,
// all inside one transaction. A concurrent insert losing the race on the
// composite key is folded into the "already liked" outcome instead of failing.
func (s *EngagementRepoImpl) ToggleLike(ctx context.Context, userID, postID uint64) (bool, int64, error) {
	var liked bool
	var likeCount int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Like{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Count(&existing).Error; err != nil {
			return errors.Wrap(err, "check like")
		}

		if existing > 0 {
			if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
				Delete(&model.Like{}).Error; err != nil {
				return errors.Wrap(err, "delete like")
			}
			// floored so a reconcile race can never drive the counter negative
			if err := tx.Model(&model.Post{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END")).Error; err != nil {
				return errors.Wrap(err, "decrement like_count")
			}
			liked = false
		} else {
			err := tx.Create(&model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()}).Error
			switch {
			case err == nil:
				if err := tx.Model(&model.Post{}).Where("id = ?", postID).
					UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
					return errors.Wrap(err, "increment like_count")
				}
				liked = true
			case errors.Is(err, gorm.ErrDuplicatedKey):
				liked = true
			default:
				return errors.Wrap(err, "create like")
			}
		}

		var post model.Post
		if err := tx.Select("like_count").First(&post, postID).Error; err != nil {
			return errors.Wrap(err, "reload like_count")
		}
		likeCount = int64(post.LikeCount)
		return nil
	})

	return liked, likeCount, err
}

// UpsertReaction overwrites the emoji when a row already exists; otherwise it
// inserts one. Losing an insert race is retried as an overwrite.
func (s *EngagementRepoImpl) UpsertReaction(ctx context.Context, reaction *model.Reaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		overwrite := map[string]interface{}{
			"emoji":      reaction.Emoji,
			"updated_at": reaction.UpdatedAt,
		}

		res := tx.Model(&model.Reaction{}).
			Where("user_id = ? AND post_id = ?", reaction.UserID, reaction.PostID).
			UpdateColumns(overwrite)
		if res.Error != nil {
			return errors.Wrap(res.Error, "update reaction")
		}
		if res.RowsAffected > 0 {
			return nil
		}

		err := tx.Create(reaction).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrap(tx.Model(&model.Reaction{}).
				Where("user_id = ? AND post_id = ?", reaction.UserID, reaction.PostID).
				UpdateColumns(overwrite).Error, "update reaction after conflict")
		}
		return errors.Wrap(err, "create reaction")
	})
}

func (s *EngagementRepoImpl) GetReaction(ctx context.Context, userID, postID uint64) (*model.Reaction, error) {
	var reaction model.Reaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return errors.Wrap(err, "create comment")
		}
		return errors.Wrap(tx.Model(&model.Post{}).Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error,
			"increment comment_count")
	})
}

func (s *EngagementRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *EngagementRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) GetViewCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostView{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) GetReactionCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) SumViewCounts(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (s *EngagementRepoImpl) SumLikeCounts(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(like_count), 0)").
		Scan(&total).Error
	return total, err
}

func (s *EngagementRepoImpl) CountComments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error
	return count, err
}

// GetPostIDsEngagedByUser collects the distinct posts a user has viewed,
// liked, or commented on. Used to resync their counters after the user's rows
// are cascaded away.
func (s *EngagementRepoImpl) GetPostIDsEngagedByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	seen := make(map[uint64]struct{})
	var result []uint64

	for _, m := range []interface{}{&model.PostView{}, &model.Like{}, &model.Comment{}} {
		var ids []uint64
		if err := s.db.WithContext(ctx).Model(m).
			Where("user_id = ?", userID).
			Distinct().
			Pluck("post_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				result = append(result, id)
			}
		}
	}
	return result, nil
}

// SyncPostCounters re-derives the denormalized counters from the detail
// tables. The detail rows are the source of truth; this repairs any drift.
func (s *EngagementRepoImpl) SyncPostCounters(ctx context.Context, postID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return errors.Wrap(tx.Model(&model.Post{}).Where("id = ?", postID).
			UpdateColumns(map[string]interface{}{
				"view_count":    gorm.Expr("(SELECT COUNT(*) FROM post_views WHERE post_views.post_id = posts.id)"),
				"like_count":    gorm.Expr("(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)"),
				"comment_count": gorm.Expr("(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)"),
			}).Error, "sync post counters")
	})
}
