package service

import (
	"context"

	"eatery-reviews/eatery-svc/internal/domain"
)

type EateryServiceInterface interface {
	List(ctx context.Context) ([]domain.Eatery, error)
	Get(ctx context.Context, id int) (*domain.Eatery, error)
	Create(ctx context.Context, in domain.CreateEateryInput) (*domain.Eatery, error)
	Update(ctx context.Context, id int, in domain.UpdateEateryInput) (*domain.Eatery, error)
	Delete(ctx context.Context, id int) (*domain.Eatery, error)
	Flag(ctx context.Context, id int, in domain.FlagInput) (*domain.Eatery, error)
	Unflag(ctx context.Context, id int) (*domain.Eatery, error)
	ReviewQRCode(ctx context.Context, id int) ([]byte, error)
}

type ReviewServiceInterface interface {
	List(ctx context.Context, eateryID int) ([]domain.Review, error)
	Get(ctx context.Context, eateryID, reviewID int) (*domain.Review, error)
	Add(ctx context.Context, eateryID int, in domain.CreateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, eateryID, reviewID int) (*domain.Review, error)
	Flag(ctx context.Context, eateryID, reviewID int, in domain.FlagInput) (*domain.Review, error)
	Unflag(ctx context.Context, eateryID, reviewID int) (*domain.Review, error)
	RecomputeRating(ctx context.Context, eateryID int) (*domain.Eatery, error)
}

type EateryRepository interface {
	ListEateries(ctx context.Context) ([]domain.Eatery, error)
	GetEatery(ctx context.Context, id int) (*domain.Eatery, error)
	CreateEatery(ctx context.Context, eatery *domain.Eatery) error
	UpdateEatery(ctx context.Context, eatery *domain.Eatery) error
	DeleteEatery(ctx context.Context, id int) (*domain.Eatery, error)
	FlagEatery(ctx context.Context, id int, reason string) (*domain.Eatery, error)
	UnflagEatery(ctx context.Context, id int) (*domain.Eatery, error)
	SetRating(ctx context.Context, id int, rating float64) error
}

type ReviewRepository interface {
	ListReviews(ctx context.Context, eateryID int) ([]domain.Review, error)
	GetReview(ctx context.Context, eateryID, reviewID int) (*domain.Review, error)
	RatingState(ctx context.Context, eateryID int) (domain.RatingState, error)
	InsertReview(ctx context.Context, review *domain.Review, eateryRating float64) error
	DeleteReview(ctx context.Context, eateryID, reviewID int, eateryRating float64) error
	FlagReview(ctx context.Context, eateryID, reviewID int, reason string) (*domain.Review, error)
	UnflagReview(ctx context.Context, eateryID, reviewID int) (*domain.Review, error)
}

// EateryLocker serializes read-modify-write sequences on a single eatery.
// The returned func releases the lock.
type EateryLocker interface {
	Lock(ctx context.Context, eateryID int) (func(), error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(eateryID int) ([]byte, error)
}

var (
	_ EateryServiceInterface = (*EateryService)(nil)
	_ ReviewServiceInterface = (*ReviewService)(nil)
)
