package service

import (
	"context"
	"time"

	"eatery-reviews/analytics-svc/internal/domain"
	"eatery-reviews/analytics-svc/internal/storage"
)

type AnalyticsInterface interface {
	TopEateries(ctx context.Context, limit int) ([]domain.EateryRanking, error)
	EateryStats(ctx context.Context, eateryID int) (*domain.EateryStats, error)
	RatingDistribution(ctx context.Context, eateryID int) (domain.Distribution, error)
	Moderation(ctx context.Context) (*domain.ModerationQueue, error)
	Trending(ctx context.Context, date string, limit int) ([]domain.TrendingEatery, error)
}

// ReadModel is the Redis side maintained by agg-svc.
type ReadModel interface {
	Leaderboard(ctx context.Context, limit int) ([]domain.EateryRanking, error)
	EateryStats(ctx context.Context, eateryID int) (*domain.EateryStats, error)
	Trending(ctx context.Context, day time.Time, limit int) ([]domain.TrendingEatery, error)
	Moderation(ctx context.Context) (*domain.ModerationQueue, error)
}

// Database is the Postgres source of truth.
type Database interface {
	EateryNames(ctx context.Context, ids []int) (map[int]string, error)
	TopRated(ctx context.Context, limit int) ([]domain.EateryRanking, error)
	RatingDistribution(ctx context.Context, eateryID int) (domain.Distribution, error)
	Moderation(ctx context.Context) (*domain.ModerationQueue, error)
}

var (
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ ReadModel          = (*storage.RedisReadModel)(nil)
	_ Database           = (*storage.PostgresReader)(nil)
)
