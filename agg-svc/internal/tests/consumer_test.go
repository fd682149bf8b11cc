package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"eatery-reviews/agg-svc/internal/domain"
	"eatery-reviews/agg-svc/internal/mocks"
	"eatery-reviews/agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsumer_Process(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		event          domain.Event
		setupMockStore func(*mocks.StoreInterface)
		expectError    bool
	}{
		{
			name:  "review_added",
			event: domain.Event{Type: domain.EventReviewAdded, EateryID: 1, ReviewID: 3, Rating: 4.5, ReviewCount: 2, Timestamp: at},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("RecordReview", ctx, 1, at).Return(nil).Once()
				store.On("UpdateLeaderboard", ctx, 1, 4.5, 2).Return(nil).Once()
				store.On("RatingDrift", ctx, 1).Return(domain.RatingDrift{EateryID: 1, Stored: 4.5, Actual: 4.5, Reviews: 2}, nil).Once()
			},
		},
		{
			name:  "review_added_without_timestamp",
			event: domain.Event{Type: domain.EventReviewAdded, EateryID: 1, Rating: 3, ReviewCount: 1},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("RecordReview", ctx, 1, mock.AnythingOfType("time.Time")).Return(nil).Once()
				store.On("UpdateLeaderboard", ctx, 1, 3.0, 1).Return(nil).Once()
				store.On("RatingDrift", ctx, 1).Return(domain.RatingDrift{}, nil).Once()
			},
		},
		{
			name:  "review_deleted",
			event: domain.Event{Type: domain.EventReviewDeleted, EateryID: 1, ReviewID: 7, Rating: 0, ReviewCount: 0},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("SetReviewFlagged", ctx, 1, 7, false).Return(nil).Once()
				store.On("UpdateLeaderboard", ctx, 1, 0.0, 0).Return(nil).Once()
				store.On("RatingDrift", ctx, 1).Return(domain.RatingDrift{}, domain.ErrNotFound).Once()
			},
		},
		{
			name:  "rating_recomputed",
			event: domain.Event{Type: domain.EventRatingRecomputed, EateryID: 2, Rating: 2.5, ReviewCount: 4},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("UpdateLeaderboard", ctx, 2, 2.5, 4).Return(nil).Once()
				store.On("RatingDrift", ctx, 2).Return(domain.RatingDrift{}, errors.New("db down")).Once()
			},
		},
		{
			name:  "leaderboard_error",
			event: domain.Event{Type: domain.EventEateryCreated, EateryID: 2},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("UpdateLeaderboard", ctx, 2, 0.0, 0).Return(errors.New("redis error")).Once()
			},
			expectError: true,
		},
		{
			name:  "eatery_deleted",
			event: domain.Event{Type: domain.EventEateryDeleted, EateryID: 5},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("RemoveEatery", ctx, 5).Return(nil).Once()
			},
		},
		{
			name:  "eatery_flagged",
			event: domain.Event{Type: domain.EventEateryFlagged, EateryID: 5, Flag: true},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("SetEateryFlagged", ctx, 5, true).Return(nil).Once()
			},
		},
		{
			name:  "eatery_unflagged",
			event: domain.Event{Type: domain.EventEateryUnflagged, EateryID: 5},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("SetEateryFlagged", ctx, 5, false).Return(nil).Once()
			},
		},
		{
			name:  "review_flagged",
			event: domain.Event{Type: domain.EventReviewFlagged, EateryID: 5, ReviewID: 8, Flag: true},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("SetReviewFlagged", ctx, 5, 8, true).Return(nil).Once()
			},
		},
		{
			name:  "review_unflagged_error",
			event: domain.Event{Type: domain.EventReviewUnflagged, EateryID: 5, ReviewID: 8},
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("SetReviewFlagged", ctx, 5, 8, false).Return(errors.New("redis error")).Once()
			},
			expectError: true,
		},
		{
			name:           "eatery_updated_is_ignored",
			event:          domain.Event{Type: domain.EventEateryUpdated, EateryID: 5},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
		{
			name:           "unknown_type",
			event:          domain.Event{Type: "menu_changed", EateryID: 5},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStoreInterface(t)
			testCase.setupMockStore(store)

			consumer := service.NewConsumer(nil, store, zap.NewNop())
			err := consumer.Process(ctx, testCase.event)
			if testCase.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_WarnsOnDrift(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	store := mocks.NewStoreInterface(t)

	store.On("UpdateLeaderboard", ctx, 1, 4.0, 2).Return(nil).Once()
	store.On("RatingDrift", ctx, 1).Return(domain.RatingDrift{EateryID: 1, Stored: 4.0, Actual: 3.5, Reviews: 2}, nil).Once()

	consumer := service.NewConsumer(nil, store, zap.New(core))
	assert.NoError(t, consumer.Process(ctx, domain.Event{Type: domain.EventRatingRecomputed, EateryID: 1, Rating: 4, ReviewCount: 2}))

	entries := logs.FilterMessage("rating drift detected").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, 3.5, entries[0].ContextMap()["actual"])
	}
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)

	payload, _ := json.Marshal(domain.Event{Type: domain.EventEateryFlagged, EateryID: 4, Flag: true})
	reader.On("ReadMessage", ctx).Return(kafka.Message{Key: []byte("4"), Value: payload}, nil).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{}, errors.New("rebalance in progress")).Once()
	reader.On("ReadMessage", ctx).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	store.On("SetEateryFlagged", ctx, 4, true).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, store, zap.NewNop()).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}

func TestConsumer_StartStopsWhenReaderClosed(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, io.EOF).Once()

	service.NewConsumer(reader, mocks.NewStoreInterface(t), zap.NewNop()).Start(context.Background())
}
