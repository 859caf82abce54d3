package job

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// CounterSyncJob re-derives the denormalized post counters from the detail
// tables for every post touched since the last run. The dirty set is renamed
// before processing so mutations landing mid-run mark the next cycle.
type CounterSyncJob struct {
	engagementRepo repository.EngagementRepo
}

func NewCounterSyncJob(engagementRepo repository.EngagementRepo) *CounterSyncJob {
	return &CounterSyncJob{engagementRepo: engagementRepo}
}

func (s *CounterSyncJob) Run() {
	traceID := "job-counter-sync-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.PostDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.PostDirtyKey, processingKey); err != nil {
		// nothing marked dirty since the last run
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty post set error", "err", err)
		return
	}

	synced := 0
	for _, member := range members {
		postID, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "skip malformed dirty set member", "member", member)
			continue
		}
		if err := s.ReconcilePost(ctx, postID); err != nil {
			log.ErrorContext(ctx, "sync post counters error", "postID", postID, "err", err)
			continue
		}
		synced++
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}

	log.InfoContext(ctx, "counter sync finished", "dirty", len(members), "synced", synced)
}

// ReconcilePost resyncs one post's counters and drops its count caches.
func (s *CounterSyncJob) ReconcilePost(ctx context.Context, postID uint64) error {
	if err := s.engagementRepo.SyncPostCounters(ctx, postID); err != nil {
		return err
	}
	suffix := strconv.FormatUint(postID, 10)
	return redis.DeleteKey(ctx,
		consts.PostViewKey+suffix,
		consts.PostLikeKey+suffix,
		consts.PostCommentKey+suffix,
		consts.PostReactionKey+suffix,
	)
}
