package service

import (
	"context"
	"fmt"
	"time"

	"eatery-reviews/analytics-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// AnalyticsService answers from the Redis read models and falls back to
// Postgres when they are cold or unreachable.
type AnalyticsService struct {
	cache ReadModel
	db    Database
	log   *zap.Logger
	now   func() time.Time
}

func NewAnalyticsService(cache ReadModel, db Database, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		cache: cache,
		db:    db,
		log:   log,
		now:   time.Now,
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

func (s *AnalyticsService) TopEateries(ctx context.Context, limit int) ([]domain.EateryRanking, error) {
	limit = clampLimit(limit)

	rankings, err := s.cache.Leaderboard(ctx, limit)
	if err != nil {
		s.log.Warn("leaderboard unavailable, reading postgres", zap.Error(err))
	}
	if err != nil || len(rankings) == 0 {
		return s.db.TopRated(ctx, limit)
	}

	ids := make([]int, len(rankings))
	for i, r := range rankings {
		ids[i] = r.EateryID
	}
	names, err := s.db.EateryNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load eatery names: %w", err)
	}

	top := make([]domain.EateryRanking, 0, len(rankings))
	for _, r := range rankings {
		name, ok := names[r.EateryID]
		if !ok {
			continue
		}
		r.Name = name
		top = append(top, r)
	}
	return top, nil
}

func (s *AnalyticsService) EateryStats(ctx context.Context, eateryID int) (*domain.EateryStats, error) {
	return s.cache.EateryStats(ctx, eateryID)
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context, eateryID int) (domain.Distribution, error) {
	return s.db.RatingDistribution(ctx, eateryID)
}

func (s *AnalyticsService) Moderation(ctx context.Context) (*domain.ModerationQueue, error) {
	queue, err := s.cache.Moderation(ctx)
	if err != nil {
		s.log.Warn("moderation sets unavailable, reading postgres", zap.Error(err))
	}
	if err != nil || queue.Empty() {
		return s.db.Moderation(ctx)
	}
	return queue, nil
}

// Trending lists the most reviewed eateries on date (YYYY-MM-DD, UTC),
// defaulting to today.
func (s *AnalyticsService) Trending(ctx context.Context, date string, limit int) ([]domain.TrendingEatery, error) {
	day := s.now().UTC()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidArgument)
		}
		day = parsed
	}

	trending, err := s.cache.Trending(ctx, day, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	if len(trending) == 0 {
		return trending, nil
	}

	ids := make([]int, len(trending))
	for i, e := range trending {
		ids[i] = e.EateryID
	}
	names, err := s.db.EateryNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load eatery names: %w", err)
	}

	out := make([]domain.TrendingEatery, 0, len(trending))
	for _, e := range trending {
		name, ok := names[e.EateryID]
		if !ok {
			continue
		}
		e.Name = name
		out = append(out, e)
	}
	return out, nil
}
