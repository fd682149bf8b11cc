package service

import (
	"context"
	"fmt"

	"eatery-reviews/eatery-svc/internal/domain"

	"go.uber.org/zap"
)

// ReviewService owns reviews and keeps each eatery's aggregate rating equal
// to the mean of its reviews. Every sequence that reads the aggregate and
// writes it back runs under the eatery's lock.
type ReviewService struct {
	reviews  ReviewRepository
	eateries EateryRepository
	locker   EateryLocker
	events   notifier
	log      *zap.Logger
}

func NewReviewService(reviews ReviewRepository, eateries EateryRepository, locker EateryLocker, publisher EventPublisher, log *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		eateries: eateries,
		locker:   locker,
		events:   notifier{publisher: publisher, log: log},
		log:      log,
	}
}

func (s *ReviewService) List(ctx context.Context, eateryID int) ([]domain.Review, error) {
	if _, err := s.eateries.GetEatery(ctx, eateryID); err != nil {
		return nil, err
	}
	return s.reviews.ListReviews(ctx, eateryID)
}

func (s *ReviewService) Get(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	return s.reviews.GetReview(ctx, eateryID, reviewID)
}

func (s *ReviewService) Add(ctx context.Context, eateryID int, in domain.CreateReviewInput) (*domain.Review, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, eateryID)
	if err != nil {
		return nil, fmt.Errorf("lock eatery %d: %w", eateryID, err)
	}
	defer unlock()

	state, err := s.reviews.RatingState(ctx, eateryID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		ReviewText: in.ReviewText,
		Rating:     *in.Rating,
		EateryID:   eateryID,
	}
	rating := domain.RatingAfterAdd(state, review.Rating)
	if err := s.reviews.InsertReview(ctx, review, rating); err != nil {
		return nil, fmt.Errorf("insert review for eatery %d: %w", eateryID, err)
	}

	s.log.Debug("review added",
		zap.Int("eatery_id", eateryID),
		zap.Int("review_id", review.ID),
		zap.Float64("rating", rating),
		zap.Int("review_count", state.Count+1))
	s.events.notify(ctx, domain.Event{
		Type:        domain.EventReviewAdded,
		EateryID:    eateryID,
		ReviewID:    review.ID,
		Rating:      rating,
		ReviewCount: state.Count + 1,
	})
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	unlock, err := s.locker.Lock(ctx, eateryID)
	if err != nil {
		return nil, fmt.Errorf("lock eatery %d: %w", eateryID, err)
	}
	defer unlock()

	state, err := s.reviews.RatingState(ctx, eateryID)
	if err != nil {
		return nil, err
	}
	review, err := s.reviews.GetReview(ctx, eateryID, reviewID)
	if err != nil {
		return nil, err
	}

	rating, err := domain.RatingAfterRemove(state, review.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.reviews.DeleteReview(ctx, eateryID, reviewID, rating); err != nil {
		return nil, err
	}

	s.events.notify(ctx, domain.Event{
		Type:        domain.EventReviewDeleted,
		EateryID:    eateryID,
		ReviewID:    reviewID,
		Rating:      rating,
		ReviewCount: state.Count - 1,
	})
	return review, nil
}

func (s *ReviewService) Flag(ctx context.Context, eateryID, reviewID int, in domain.FlagInput) (*domain.Review, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	review, err := s.reviews.FlagReview(ctx, eateryID, reviewID, in.Reason)
	if err != nil {
		return nil, err
	}

	s.events.notify(ctx, reviewEvent(domain.EventReviewFlagged, review))
	return review, nil
}

func (s *ReviewService) Unflag(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	review, err := s.reviews.UnflagReview(ctx, eateryID, reviewID)
	if err != nil {
		return nil, err
	}

	s.events.notify(ctx, reviewEvent(domain.EventReviewUnflagged, review))
	return review, nil
}

// RecomputeRating replaces the stored aggregate with the exact mean of the
// eatery's current reviews, discarding any accumulated rounding drift.
func (s *ReviewService) RecomputeRating(ctx context.Context, eateryID int) (*domain.Eatery, error) {
	unlock, err := s.locker.Lock(ctx, eateryID)
	if err != nil {
		return nil, fmt.Errorf("lock eatery %d: %w", eateryID, err)
	}
	defer unlock()

	eatery, err := s.eateries.GetEatery(ctx, eateryID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListReviews(ctx, eateryID)
	if err != nil {
		return nil, err
	}

	rating := domain.MeanRating(reviews)
	if err := s.eateries.SetRating(ctx, eateryID, rating); err != nil {
		return nil, fmt.Errorf("set rating for eatery %d: %w", eateryID, err)
	}
	if rating != eatery.Rating {
		s.log.Info("eatery rating recomputed",
			zap.Int("eatery_id", eateryID),
			zap.Float64("previous", eatery.Rating),
			zap.Float64("rating", rating))
	}
	eatery.Rating = rating

	s.events.notify(ctx, domain.Event{
		Type:        domain.EventRatingRecomputed,
		EateryID:    eateryID,
		Rating:      rating,
		ReviewCount: len(reviews),
		Flag:        eatery.Flag,
	})
	return eatery, nil
}

func reviewEvent(t domain.EventType, r *domain.Review) domain.Event {
	return domain.Event{
		Type:     t,
		EateryID: r.EateryID,
		ReviewID: r.ID,
		Flag:     r.Flag,
	}
}
