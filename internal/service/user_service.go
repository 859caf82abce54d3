package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error)
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type userServiceImpl struct {
	userRepo       repository.UserRepo
	engagementRepo repository.EngagementRepo
}

func NewUserService(userRepo repository.UserRepo, engagementRepo repository.EngagementRepo) UserService {
	return &userServiceImpl{
		userRepo:       userRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: passwordHash,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}

	return s.convertToUserDTO(user), nil
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingLoginCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{
		Token: token,
		User:  *s.convertToUserDTO(user),
	}, nil
}

// Logout blacklists the token's signature until it would have expired anyway.
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *userServiceImpl) GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.convertToUserDTO(user), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListNonAdminUsers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		res = append(res, s.convertToUserDTO(u))
	}
	return res, nil
}

// DeleteUser removes the account and its engagement rows, then queues the
// posts it had touched so their counters get re-derived.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	engagedPostIDs, err := s.engagementRepo.GetPostIDsEngagedByUser(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}

	for _, postID := range engagedPostIDs {
		if err := s.engagementRepo.SyncPostCounters(ctx, postID); err != nil {
			return err
		}
		_ = redis.SAdd(ctx, consts.PostDirtyKey, postID)
	}
	return nil
}

func (s *userServiceImpl) convertToUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)
	return userDTO
}
