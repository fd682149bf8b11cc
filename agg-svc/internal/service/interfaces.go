package service

import (
	"context"
	"time"

	"eatery-reviews/agg-svc/internal/domain"
	"eatery-reviews/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	UpdateLeaderboard(ctx context.Context, eateryID int, rating float64, reviewCount int) error
	RecordReview(ctx context.Context, eateryID int, at time.Time) error
	RemoveEatery(ctx context.Context, eateryID int) error
	SetEateryFlagged(ctx context.Context, eateryID int, flagged bool) error
	SetReviewFlagged(ctx context.Context, eateryID, reviewID int, flagged bool) error
	RatingDrift(ctx context.Context, eateryID int) (domain.RatingDrift, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
