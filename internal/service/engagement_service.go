package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const cacheExpiration = 7 * 24 * time.Hour

const timeLayout = "2006-01-02 15:04:05"

type EngagementService interface {
	RecordView(ctx context.Context, userID, postID uint64) error
	ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeResultDTO, error)
	SetReaction(ctx context.Context, userID, postID uint64, emoji string) (*dto.ReactionDTO, error)
	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetCommentsByPostID(ctx context.Context, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	GetEngagementState(ctx context.Context, userID, postID uint64) (*dto.EngagementStateDTO, error)

	GetPostViewCount(ctx context.Context, postID uint64) (int64, error)
	GetPostLikeCount(ctx context.Context, postID uint64) (int64, error)
	GetPostCommentCount(ctx context.Context, postID uint64) (int64, error)
	GetPostReactionCount(ctx context.Context, postID uint64) (int64, error)
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	postRepo       repository.PostRepo
	userRepo       repository.UserRepo
}

func NewEngagementService(
	engagementRepo repository.EngagementRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		userRepo:       userRepo,
	}
}

// RecordView counts each (user, post) pair at most once: the dedup row's
// composite key rejects a second insert, and that rejection is the benign
// "already viewed" outcome, not a failure.
func (s *engagementServiceImpl) RecordView(ctx context.Context, userID, postID uint64) error {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return err
	}

	err := s.engagementRepo.CreateView(ctx, &model.PostView{
		UserID:   userID,
		PostID:   postID,
		ViewedAt: time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) {
			return nil
		}
		return err
	}

	s.invalidateAndMarkDirty(ctx, postID, consts.PostViewKey)
	return nil
}

// ToggleLike flips the caller's like state and reports the resulting state.
func (s *engagementServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeResultDTO, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	liked, likeCount, err := s.engagementRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	s.invalidateAndMarkDirty(ctx, postID, consts.PostLikeKey)
	return &dto.LikeResultDTO{Liked: liked, LikeCount: likeCount}, nil
}

// SetReaction stores the emoji for (user, post), overwriting any previous one.
func (s *engagementServiceImpl) SetReaction(ctx context.Context, userID, postID uint64, emoji string) (*dto.ReactionDTO, error) {
	if strings.TrimSpace(emoji) == "" {
		return nil, ErrEmojiRequired
	}
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	err := s.engagementRepo.UpsertReaction(ctx, &model.Reaction{
		UserID:    userID,
		PostID:    postID,
		Emoji:     emoji,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAndMarkDirty(ctx, postID, consts.PostReactionKey)

	stored, err := s.engagementRepo.GetReaction(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return &dto.ReactionDTO{
		UserID:    stored.UserID,
		PostID:    stored.PostID,
		Emoji:     stored.Emoji,
		CreatedAt: stored.CreatedAt.Format(timeLayout),
		UpdatedAt: stored.UpdatedAt.Format(timeLayout),
	}, nil
}

func (s *engagementServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}
	if err := s.checkPostExists(ctx, req.PostID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:    req.PostID,
		UserID:    userID,
		Message:   req.Message,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateAndMarkDirty(ctx, req.PostID, consts.PostCommentKey)

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	commentDTO := s.convertToCommentDTO(comment)
	if user != nil {
		commentDTO.Username = user.Username
	}
	return commentDTO, nil
}

func (s *engagementServiceImpl) GetCommentsByPostID(ctx context.Context, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.engagementRepo.GetCommentsByPostID(ctx, postID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := s.convertToCommentDTO(c)
		item.Username = c.User.Username
		res = append(res, item)
	}
	return res, nil
}

func (s *engagementServiceImpl) GetEngagementState(ctx context.Context, userID, postID uint64) (*dto.EngagementStateDTO, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	state := &dto.EngagementStateDTO{}
	var err error
	if state.ViewCount, err = s.GetPostViewCount(ctx, postID); err != nil {
		return nil, err
	}
	if state.LikeCount, err = s.GetPostLikeCount(ctx, postID); err != nil {
		return nil, err
	}
	if state.CommentCount, err = s.GetPostCommentCount(ctx, postID); err != nil {
		return nil, err
	}
	if state.ReactionCount, err = s.GetPostReactionCount(ctx, postID); err != nil {
		return nil, err
	}
	if userID > 0 {
		if state.IsLiked, err = s.engagementRepo.CheckLikeExists(ctx, userID, postID); err != nil {
			return nil, err
		}
	}
	return state, nil
}

func (s *engagementServiceImpl) GetPostViewCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostViewKey, postID, s.engagementRepo.GetViewCountByPostID)
}

func (s *engagementServiceImpl) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostLikeKey, postID, s.engagementRepo.GetLikeCountByPostID)
}

func (s *engagementServiceImpl) GetPostCommentCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostCommentKey, postID, s.engagementRepo.GetCommentCountByPostID)
}

func (s *engagementServiceImpl) GetPostReactionCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostReactionKey, postID, s.engagementRepo.GetReactionCountByPostID)
}

func (s *engagementServiceImpl) cachedCount(ctx context.Context, keyPrefix string, postID uint64, fetch func(context.Context, uint64) (int64, error)) (int64, error) {
	key := keyPrefix + strconv.FormatUint(postID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := fetch(ctx, postID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

// invalidateAndMarkDirty drops the stale count cache and queues the post for
// the counter reconcile job.
func (s *engagementServiceImpl) invalidateAndMarkDirty(ctx context.Context, postID uint64, keyPrefix string) {
	key := keyPrefix + strconv.FormatUint(postID, 10)
	_ = redis.DeleteKey(ctx, key)
	_ = redis.SAdd(ctx, consts.PostDirtyKey, postID)
}

func (s *engagementServiceImpl) checkPostExists(ctx context.Context, postID uint64) error {
	if _, err := s.postRepo.GetPostBrief(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func (s *engagementServiceImpl) convertToCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Message:   comment.Message,
		CreatedAt: comment.CreatedAt.Format(timeLayout),
	}
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
