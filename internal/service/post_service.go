package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, authorID, postID uint64, req *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, authorID, postID uint64) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{postRepo: postRepo}
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, s.convertToPostDTO(post))
	}
	return list, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.convertToPostDTO(post), nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post := &model.Post{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}

	if err := s.postRepo.CreatePost(ctx, post, buildIllustrations(req.Illustrations)); err != nil {
		return nil, err
	}

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return s.convertToPostDTO(created), nil
}

// UpdatePost replaces the body and illustration batch. Only the owning author
// may touch the post; stale stored files are removed off the request path.
func (s *postServiceImpl) UpdatePost(ctx context.Context, authorID, postID uint64, req *dto.PostBaseDTO) error {
	existing, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if existing.AuthorID != authorID {
		return ErrPostNotFound
	}

	post := &model.Post{
		ID:      postID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.postRepo.UpdatePost(ctx, post, buildIllustrations(req.Illustrations)); err != nil {
		return err
	}

	// 新插图批次仍引用的对象不能删，只清真正被换掉的
	s.cleanupObjects(staleObjects(existing.Illustrations, req.Illustrations), postID)
	return nil
}

// DeletePost cascades every detail row in one transaction, then removes the
// stored illustration files in the background.
func (s *postServiceImpl) DeletePost(ctx context.Context, authorID, postID uint64) error {
	existing, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if existing.AuthorID != authorID {
		return ErrPostNotFound
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	s.cleanupObjects(staleObjects(existing.Illustrations, nil), postID)
	return nil
}

// staleObjects returns the stored object names the incoming batch no longer
// references. Re-sent names stay untouched so an edit that keeps an image
// never loses its file.
func staleObjects(existing []model.Illustration, next []*dto.IllustrationInputDTO) []string {
	kept := make(map[string]struct{}, len(next))
	for _, in := range next {
		if in.ObjectName != "" {
			kept[in.ObjectName] = struct{}{}
		}
	}

	var stale []string
	for _, il := range existing {
		if il.ObjectName == "" {
			continue
		}
		if _, ok := kept[il.ObjectName]; !ok {
			stale = append(stale, il.ObjectName)
		}
	}
	return stale
}

func (s *postServiceImpl) cleanupObjects(objects []string, postID uint64) {
	if len(objects) == 0 {
		return
	}

	go func() {
		bgCtx := context.Background()
		for _, name := range objects {
			_ = minio.DeleteFile(bgCtx, name)
		}
		log.Info("illustration files cleaned up", "postID", postID, "count", len(objects))
	}()
}

func buildIllustrations(inputs []*dto.IllustrationInputDTO) []*model.Illustration {
	illustrations := make([]*model.Illustration, 0, len(inputs))
	for i, in := range inputs {
		illustrations = append(illustrations, &model.Illustration{
			Content:    in.Content,
			ObjectName: in.ObjectName,
			SortOrder:  i + 1,
		})
	}
	return illustrations
}

func (s *postServiceImpl) convertToPostDTO(post *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)

	item.Illustrations = make([]*dto.IllustrationDTO, 0, len(post.Illustrations))
	for _, il := range post.Illustrations {
		item.Illustrations = append(item.Illustrations, &dto.IllustrationDTO{
			ID:        il.ID,
			Content:   il.Content,
			URL:       minio.GetPublicURL(il.ObjectName),
			SortOrder: il.SortOrder,
		})
	}

	item.Reactions = make([]*dto.ReactionByUserDTO, 0, len(post.Reactions))
	for _, r := range post.Reactions {
		item.Reactions = append(item.Reactions, &dto.ReactionByUserDTO{
			Username: r.User.Username,
			Emoji:    r.Emoji,
		})
	}

	item.LikedUserIDs = make([]uint64, 0, len(post.Likes))
	for _, l := range post.Likes {
		item.LikedUserIDs = append(item.LikedUserIDs, l.UserID)
	}

	item.CreatedAt = post.CreatedAt.Format(timeLayout)
	item.UpdatedAt = post.UpdatedAt.Format(timeLayout)
	return item
}
