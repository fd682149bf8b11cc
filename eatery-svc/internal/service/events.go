package service

import (
	"context"
	"time"

	"eatery-reviews/eatery-svc/internal/domain"

	"go.uber.org/zap"
)

// notifier publishes events after a mutation has been committed. Failures
// are logged and never reach the caller.
type notifier struct {
	publisher EventPublisher
	log       *zap.Logger
}

func (n notifier) notify(ctx context.Context, event domain.Event) {
	if n.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.log.Warn("failed to publish event",
			zap.String("type", string(event.Type)),
			zap.Int("eatery_id", event.EateryID),
			zap.Error(err))
	}
}

func eateryEvent(t domain.EventType, e *domain.Eatery) domain.Event {
	return domain.Event{
		Type:     t,
		EateryID: e.ID,
		Rating:   e.Rating,
		Flag:     e.Flag,
	}
}
