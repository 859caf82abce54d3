package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListNonAdminUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) ListNonAdminUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// DeleteUser removes the account and every engagement row it produced. The
// store does not cascade these relations on its own, so each table is cleaned
// explicitly inside the transaction.
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PostView{}, "user_id = ?", id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete views")
		}
		if err := tx.Delete(&model.Like{}, "user_id = ?", id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete likes")
		}
		if err := tx.Delete(&model.Reaction{}, "user_id = ?", id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete reactions")
		}
		if err := tx.Delete(&model.Comment{}, "user_id = ?", id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete comments")
		}
		return pkgerrors.Wrap(tx.Delete(&model.User{}, id).Error, "delete user")
	})
}
