package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"context"
	log "log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc       service.PostService
	engagementSvc service.EngagementService
}

func NewPostHandler(postSvc service.PostService, engagementSvc service.EngagementService) *PostHandler {
	return &PostHandler{
		postSvc:       postSvc,
		engagementSvc: engagementSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 登录用户打开帖子即计一次浏览，重复浏览静默忽略，不阻塞响应
	if userID > 0 {
		bgCtx := context.WithoutCancel(c.Request.Context())
		go func() {
			if err := s.engagementSvc.RecordView(bgCtx, userID, postID); err != nil {
				log.ErrorContext(bgCtx, "record view error", "postID", postID, "err", err)
			}
		}()
	}

	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postIDStr := c.Param("post_id")

	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postIDStr := c.Param("post_id")

	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
