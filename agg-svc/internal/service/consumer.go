package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"eatery-reviews/agg-svc/internal/domain"

	"go.uber.org/zap"
)

const DefaultDriftTolerance = 1e-6

// Consumer folds eatery events into the Redis read models.
type Consumer struct {
	Reader         MessageReader
	Store          StoreInterface
	Log            *zap.Logger
	DriftTolerance float64
}

func NewConsumer(reader MessageReader, store StoreInterface, log *zap.Logger) *Consumer {
	return &Consumer{
		Reader:         reader,
		Store:          store,
		Log:            log,
		DriftTolerance: DefaultDriftTolerance,
	}
}

// Start reads until ctx is cancelled or the reader is closed. Malformed
// messages and failed updates are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("starting aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Log.Info("aggregation consumer stopped")
				return
			}
			c.Log.Error("error reading message", zap.Error(err))
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.Warn("error unmarshaling message",
				zap.ByteString("key", message.Key),
				zap.Error(err))
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			c.Log.Warn("failed to process event",
				zap.String("type", string(event.Type)),
				zap.Int("eatery_id", event.EateryID),
				zap.Error(err))
		}
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventReviewAdded, domain.EventReviewDeleted, domain.EventRatingRecomputed, domain.EventEateryCreated:
		if event.Type == domain.EventReviewAdded {
			at := event.Timestamp
			if at.IsZero() {
				at = time.Now()
			}
			if err := c.Store.RecordReview(ctx, event.EateryID, at); err != nil {
				return fmt.Errorf("record review: %w", err)
			}
		}
		if event.Type == domain.EventReviewDeleted {
			if err := c.Store.SetReviewFlagged(ctx, event.EateryID, event.ReviewID, false); err != nil {
				return fmt.Errorf("clear deleted review flag: %w", err)
			}
		}
		if err := c.Store.UpdateLeaderboard(ctx, event.EateryID, event.Rating, event.ReviewCount); err != nil {
			return fmt.Errorf("update leaderboard: %w", err)
		}
		c.checkDrift(ctx, event.EateryID)

	case domain.EventEateryDeleted:
		if err := c.Store.RemoveEatery(ctx, event.EateryID); err != nil {
			return fmt.Errorf("remove eatery: %w", err)
		}

	case domain.EventEateryFlagged, domain.EventEateryUnflagged:
		flagged := event.Type == domain.EventEateryFlagged
		if err := c.Store.SetEateryFlagged(ctx, event.EateryID, flagged); err != nil {
			return fmt.Errorf("set eatery flag: %w", err)
		}

	case domain.EventReviewFlagged, domain.EventReviewUnflagged:
		flagged := event.Type == domain.EventReviewFlagged
		if err := c.Store.SetReviewFlagged(ctx, event.EateryID, event.ReviewID, flagged); err != nil {
			return fmt.Errorf("set review flag: %w", err)
		}

	default:
		c.Log.Debug("ignoring event", zap.String("type", string(event.Type)))
		return nil
	}

	c.Log.Debug("processed event",
		zap.String("type", string(event.Type)),
		zap.Int("eatery_id", event.EateryID))
	return nil
}

// checkDrift warns when the stored aggregate no longer matches the mean of
// the eatery's reviews.
func (c *Consumer) checkDrift(ctx context.Context, eateryID int) {
	drift, err := c.Store.RatingDrift(ctx, eateryID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.Log.Debug("eatery gone before drift check", zap.Int("eatery_id", eateryID))
		return
	case err != nil:
		c.Log.Warn("drift check failed", zap.Int("eatery_id", eateryID), zap.Error(err))
		return
	}

	if drift.Delta() > c.DriftTolerance {
		c.Log.Warn("rating drift detected",
			zap.Int("eatery_id", eateryID),
			zap.Float64("stored", drift.Stored),
			zap.Float64("actual", drift.Actual),
			zap.Int("reviews", drift.Reviews))
	}
}
