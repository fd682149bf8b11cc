package tests

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"eatery-reviews/eatery-svc/internal/domain"
)

// memoryRepository is a map-backed EateryRepository and ReviewRepository.
// Each call is atomic on its own but nothing spans calls, so read-modify-write
// safety has to come from the service's locker.
type memoryRepository struct {
	mu         sync.Mutex
	nextEatery int
	nextReview int
	eateries   map[int]domain.Eatery
	reviews    map[int]domain.Review
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		eateries: make(map[int]domain.Eatery),
		reviews:  make(map[int]domain.Review),
	}
}

func (m *memoryRepository) notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}

func (m *memoryRepository) ListEateries(ctx context.Context) ([]domain.Eatery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Eatery, 0, len(m.eateries))
	for _, e := range m.eateries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepository) GetEatery(ctx context.Context, id int) (*domain.Eatery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.eateries[id]
	if !ok {
		return nil, m.notFound("eatery", id)
	}
	return &e, nil
}

func (m *memoryRepository) CreateEatery(ctx context.Context, eatery *domain.Eatery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextEatery++
	eatery.ID = m.nextEatery
	m.eateries[eatery.ID] = *eatery
	return nil
}

func (m *memoryRepository) UpdateEatery(ctx context.Context, eatery *domain.Eatery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.eateries[eatery.ID]
	if !ok {
		return m.notFound("eatery", eatery.ID)
	}
	e.Name, e.Address, e.Contact = eatery.Name, eatery.Address, eatery.Contact
	m.eateries[e.ID] = e
	*eatery = e
	return nil
}

func (m *memoryRepository) DeleteEatery(ctx context.Context, id int) (*domain.Eatery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.eateries[id]
	if !ok {
		return nil, m.notFound("eatery", id)
	}
	for rid, r := range m.reviews {
		if r.EateryID == id {
			delete(m.reviews, rid)
		}
	}
	delete(m.eateries, id)
	return &e, nil
}

func (m *memoryRepository) setEateryFlag(id int, flag bool, reason string) (*domain.Eatery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.eateries[id]
	if !ok {
		return nil, m.notFound("eatery", id)
	}
	e.Flag, e.WhyFlag = flag, reason
	m.eateries[id] = e
	return &e, nil
}

func (m *memoryRepository) FlagEatery(ctx context.Context, id int, reason string) (*domain.Eatery, error) {
	return m.setEateryFlag(id, true, reason)
}

func (m *memoryRepository) UnflagEatery(ctx context.Context, id int) (*domain.Eatery, error) {
	return m.setEateryFlag(id, false, "")
}

func (m *memoryRepository) SetRating(ctx context.Context, id int, rating float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.eateries[id]
	if !ok {
		return m.notFound("eatery", id)
	}
	e.Rating = rating
	m.eateries[id] = e
	return nil
}

func (m *memoryRepository) ListReviews(ctx context.Context, eateryID int) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Review, 0)
	for _, r := range m.reviews {
		if r.EateryID == eateryID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepository) GetReview(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewID]
	if !ok || r.EateryID != eateryID {
		return nil, m.notFound("review", reviewID)
	}
	return &r, nil
}

func (m *memoryRepository) RatingState(ctx context.Context, eateryID int) (domain.RatingState, error) {
	m.mu.Lock()
	e, ok := m.eateries[eateryID]
	count := 0
	for _, r := range m.reviews {
		if r.EateryID == eateryID {
			count++
		}
	}
	m.mu.Unlock()

	// Widen the window between read and write so unserialized callers
	// would interleave.
	runtime.Gosched()

	if !ok {
		return domain.RatingState{}, m.notFound("eatery", eateryID)
	}
	return domain.RatingState{Rating: e.Rating, Count: count}, nil
}

func (m *memoryRepository) InsertReview(ctx context.Context, review *domain.Review, eateryRating float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.eateries[review.EateryID]
	if !ok {
		return m.notFound("eatery", review.EateryID)
	}
	m.nextReview++
	review.ID = m.nextReview
	m.reviews[review.ID] = *review
	e.Rating = eateryRating
	m.eateries[e.ID] = e
	return nil
}

func (m *memoryRepository) DeleteReview(ctx context.Context, eateryID, reviewID int, eateryRating float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewID]
	if !ok || r.EateryID != eateryID {
		return m.notFound("review", reviewID)
	}
	e, ok := m.eateries[eateryID]
	if !ok {
		return m.notFound("eatery", eateryID)
	}
	delete(m.reviews, reviewID)
	e.Rating = eateryRating
	m.eateries[eateryID] = e
	return nil
}

func (m *memoryRepository) setReviewFlag(eateryID, reviewID int, flag bool, reason string) (*domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewID]
	if !ok || r.EateryID != eateryID {
		return nil, m.notFound("review", reviewID)
	}
	r.Flag, r.WhyFlag = flag, reason
	r.FlaggedBefore = r.FlaggedBefore || flag
	m.reviews[reviewID] = r
	return &r, nil
}

func (m *memoryRepository) FlagReview(ctx context.Context, eateryID, reviewID int, reason string) (*domain.Review, error) {
	return m.setReviewFlag(eateryID, reviewID, true, reason)
}

func (m *memoryRepository) UnflagReview(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	return m.setReviewFlag(eateryID, reviewID, false, "")
}
