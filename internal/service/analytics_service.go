package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const summaryCacheExpiration = time.Minute

type AnalyticsService interface {
	GetSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error)
}

type analyticsServiceImpl struct {
	engagementRepo repository.EngagementRepo
}

func NewAnalyticsService(engagementRepo repository.EngagementRepo) AnalyticsService {
	return &analyticsServiceImpl{engagementRepo: engagementRepo}
}

// GetSummary folds the whole store into three totals. An empty store yields
// zeroes, never an error.
func (s *analyticsServiceImpl) GetSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	cached, err := redis.GetValue(ctx, consts.AnalyticsSummaryKey)
	if err == nil && cached != "" {
		var summary dto.AnalyticsSummaryDTO
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	summary := &dto.AnalyticsSummaryDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.engagementRepo.SumViewCounts(gCtx)
		summary.TotalViews = total
		return err
	})
	g.Go(func() error {
		total, err := s.engagementRepo.SumLikeCounts(gCtx)
		summary.TotalLikes = total
		return err
	})
	g.Go(func() error {
		total, err := s.engagementRepo.CountComments(gCtx)
		summary.TotalComments = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summary); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.AnalyticsSummaryKey, string(raw), summaryCacheExpiration)
	}
	return summary, nil
}
