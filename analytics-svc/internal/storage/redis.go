package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"eatery-reviews/analytics-svc/internal/domain"
	"eatery-reviews/readmodel"

	"github.com/redis/go-redis/v9"
)

type RedisReadModel struct {
	rdb *redis.Client
}

func NewRedisReadModel(rdb *redis.Client) *RedisReadModel {
	return &RedisReadModel{rdb: rdb}
}

func (m *RedisReadModel) Leaderboard(ctx context.Context, limit int) ([]domain.EateryRanking, error) {
	entries, err := m.rdb.ZRevRangeWithScores(ctx, readmodel.LeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.EateryRanking{}, nil
	}

	counts := make([]*redis.StringCmd, len(entries))
	_, err = m.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, e := range entries {
			id, _ := strconv.Atoi(e.Member.(string))
			counts[i] = pipe.HGet(ctx, readmodel.EateryKey(id), readmodel.FieldReviewCount)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	rankings := make([]domain.EateryRanking, 0, len(entries))
	for i, e := range entries {
		id, err := strconv.Atoi(e.Member.(string))
		if err != nil {
			continue
		}
		count, _ := counts[i].Int()
		rankings = append(rankings, domain.EateryRanking{
			EateryID:    id,
			Rating:      e.Score,
			ReviewCount: count,
		})
	}
	return rankings, nil
}

func (m *RedisReadModel) EateryStats(ctx context.Context, eateryID int) (*domain.EateryStats, error) {
	fields, err := m.rdb.HGetAll(ctx, readmodel.EateryKey(eateryID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("stats for eatery %d: %w", eateryID, domain.ErrNotFound)
	}

	stats := &domain.EateryStats{EateryID: eateryID}
	stats.Rating, _ = strconv.ParseFloat(fields[readmodel.FieldRating], 64)
	stats.ReviewCount, _ = strconv.Atoi(fields[readmodel.FieldReviewCount])
	stats.Flagged = fields[readmodel.FieldFlagged] == "1"
	if ts, err := strconv.ParseInt(fields[readmodel.FieldLastUpdated], 10, 64); err == nil {
		stats.LastUpdated = time.Unix(ts, 0).UTC()
	}
	return stats, nil
}

func (m *RedisReadModel) Trending(ctx context.Context, day time.Time, limit int) ([]domain.TrendingEatery, error) {
	entries, err := m.rdb.ZRevRangeWithScores(ctx, readmodel.DailyReviewsKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	trending := make([]domain.TrendingEatery, 0, len(entries))
	for _, e := range entries {
		id, err := strconv.Atoi(e.Member.(string))
		if err != nil {
			continue
		}
		trending = append(trending, domain.TrendingEatery{EateryID: id, Reviews: int(e.Score)})
	}
	return trending, nil
}

func (m *RedisReadModel) Moderation(ctx context.Context) (*domain.ModerationQueue, error) {
	eateries, err := m.rdb.SMembers(ctx, readmodel.ModerationEateriesKey).Result()
	if err != nil {
		return nil, err
	}
	reviews, err := m.rdb.SMembers(ctx, readmodel.ModerationReviewsKey).Result()
	if err != nil {
		return nil, err
	}

	queue := &domain.ModerationQueue{
		Eateries: make([]int, 0, len(eateries)),
		Reviews:  make([]domain.FlaggedReview, 0, len(reviews)),
	}
	for _, member := range eateries {
		if id, err := strconv.Atoi(member); err == nil {
			queue.Eateries = append(queue.Eateries, id)
		}
	}
	for _, member := range reviews {
		eateryID, reviewID, err := readmodel.ParseReviewMember(member)
		if err != nil {
			continue
		}
		queue.Reviews = append(queue.Reviews, domain.FlaggedReview{EateryID: eateryID, ReviewID: reviewID})
	}

	sort.Ints(queue.Eateries)
	sort.Slice(queue.Reviews, func(i, j int) bool {
		a, b := queue.Reviews[i], queue.Reviews[j]
		if a.EateryID != b.EateryID {
			return a.EateryID < b.EateryID
		}
		return a.ReviewID < b.ReviewID
	})
	return queue, nil
}
