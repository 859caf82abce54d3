package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	engagementSvc service.EngagementService
}

func NewCommentHandler(engagementSvc service.EngagementService) *CommentHandler {
	return &CommentHandler{
		engagementSvc: engagementSvc,
	}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.engagementSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

// ListComments 按时间倒序分页返回帖子评论
func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var listDTO dto.CommentListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	comments, err := s.engagementSvc.GetCommentsByPostID(c.Request.Context(), postID, listDTO.Page, listDTO.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}
