package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// GetSummary 全站互动汇总，仅管理员可见
func (s *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := s.analyticsSvc.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}
