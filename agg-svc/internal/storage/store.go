package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eatery-reviews/agg-svc/internal/domain"
	"eatery-reviews/readmodel"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// UpdateLeaderboard refreshes the eatery's snapshot hash and its leaderboard
// score. Eateries without reviews are kept off the leaderboard.
func (s *Store) UpdateLeaderboard(ctx context.Context, eateryID int, rating float64, reviewCount int) error {
	member := strconv.Itoa(eateryID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, readmodel.EateryKey(eateryID), map[string]interface{}{
			readmodel.FieldRating:      rating,
			readmodel.FieldReviewCount: reviewCount,
			readmodel.FieldLastUpdated: s.now().Unix(),
		})
		if reviewCount > 0 {
			pipe.ZAdd(ctx, readmodel.LeaderboardKey, redis.Z{Score: rating, Member: member})
		} else {
			pipe.ZRem(ctx, readmodel.LeaderboardKey, member)
		}
		return nil
	})
	return err
}

func (s *Store) RecordReview(ctx context.Context, eateryID int, at time.Time) error {
	key := readmodel.DailyReviewsKey(at)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, key, 1, strconv.Itoa(eateryID))
		pipe.Expire(ctx, key, readmodel.DailyReviewsTTL)
		return nil
	})
	return err
}

func (s *Store) RemoveEatery(ctx context.Context, eateryID int) error {
	member := strconv.Itoa(eateryID)
	flaggedReviews, err := s.rdb.SMembers(ctx, readmodel.ModerationReviewsKey).Result()
	if err != nil {
		return err
	}

	prefix := member + ":"
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, readmodel.LeaderboardKey, member)
		pipe.Del(ctx, readmodel.EateryKey(eateryID))
		pipe.SRem(ctx, readmodel.ModerationEateriesKey, member)
		for _, m := range flaggedReviews {
			if strings.HasPrefix(m, prefix) {
				pipe.SRem(ctx, readmodel.ModerationReviewsKey, m)
			}
		}
		return nil
	})
	return err
}

func (s *Store) SetEateryFlagged(ctx context.Context, eateryID int, flagged bool) error {
	member := strconv.Itoa(eateryID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if flagged {
			pipe.SAdd(ctx, readmodel.ModerationEateriesKey, member)
		} else {
			pipe.SRem(ctx, readmodel.ModerationEateriesKey, member)
		}
		pipe.HSet(ctx, readmodel.EateryKey(eateryID), readmodel.FieldFlagged, flagged)
		return nil
	})
	return err
}

func (s *Store) SetReviewFlagged(ctx context.Context, eateryID, reviewID int, flagged bool) error {
	member := readmodel.ReviewMember(eateryID, reviewID)
	if flagged {
		return s.rdb.SAdd(ctx, readmodel.ModerationReviewsKey, member).Err()
	}
	return s.rdb.SRem(ctx, readmodel.ModerationReviewsKey, member).Err()
}

func (s *Store) RatingDrift(ctx context.Context, eateryID int) (domain.RatingDrift, error) {
	drift := domain.RatingDrift{EateryID: eateryID}
	err := s.db.QueryRowContext(ctx, `
		SELECT e.rating, COALESCE(AVG(r.rating), 0), COUNT(r.id)
		FROM eateries e
		LEFT JOIN reviews r ON r.eatery_id = e.id
		WHERE e.id = $1
		GROUP BY e.id, e.rating
	`, eateryID).Scan(&drift.Stored, &drift.Actual, &drift.Reviews)
	if errors.Is(err, sql.ErrNoRows) {
		return drift, fmt.Errorf("eatery %d: %w", eateryID, domain.ErrNotFound)
	}
	return drift, err
}
