package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

// ToggleLike 点赞开关：已赞则取消，未赞则点赞
func (s *EngagementHandler) ToggleLike(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.engagementSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// React 设置表情反应，同一用户重复提交覆盖旧表情
func (s *EngagementHandler) React(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ReactionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	reaction, err := s.engagementSvc.SetReaction(c.Request.Context(), userID, postID, req.Emoji)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reaction)
}

// GetEngagementState 返回帖子聚合计数与当前用户的点赞状态
func (s *EngagementHandler) GetEngagementState(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	state, err := s.engagementSvc.GetEngagementState(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, state)
}
