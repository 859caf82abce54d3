package repository

import (
	"Inkwell/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, illustrations []*model.Illustration) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostBrief(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post, illustrations []*model.Illustration) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, illustrations []*model.Illustration) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return errors.Wrap(err, "create post")
		}
		for _, il := range illustrations {
			il.PostID = post.ID
		}
		if len(illustrations) > 0 {
			if err := tx.Create(illustrations).Error; err != nil {
				return errors.Wrap(err, "create illustrations")
			}
		}
		return nil
	})
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Illustrations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Likes").
		Preload("Reactions.User").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostBrief loads the post row alone, without associations.
func (s PostRepoImpl) GetPostBrief(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Illustrations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Likes").
		Preload("Reactions.User").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost replaces the post body and its illustration batch in one
// transaction. The old illustration rows are dropped wholesale.
func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, illustrations []*model.Illustration) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id = ?", post.ID).
			Updates(map[string]interface{}{
				"title":   post.Title,
				"content": post.Content,
			}).Error; err != nil {
			return errors.Wrap(err, "update post")
		}
		if err := tx.Delete(&model.Illustration{}, "post_id = ?", post.ID).Error; err != nil {
			return errors.Wrap(err, "delete stale illustrations")
		}
		for _, il := range illustrations {
			il.ID = 0
			il.PostID = post.ID
		}
		if len(illustrations) > 0 {
			if err := tx.Create(illustrations).Error; err != nil {
				return errors.Wrap(err, "create illustrations")
			}
		}
		return nil
	})
}

// DeletePost removes the post together with every detail row that references
// it. The cascade covers all relation tables, not just the ones the store
// would clean up on its own.
func (s PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Illustration{}, "post_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete illustrations")
		}
		if err := tx.Delete(&model.Like{}, "post_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete likes")
		}
		if err := tx.Delete(&model.PostView{}, "post_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete views")
		}
		if err := tx.Delete(&model.Reaction{}, "post_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete reactions")
		}
		if err := tx.Delete(&model.Comment{}, "post_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete comments")
		}
		return errors.Wrap(tx.Delete(&model.Post{}, id).Error, "delete post")
	})
}
