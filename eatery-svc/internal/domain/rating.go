package domain

import "fmt"

// RatingAfterAdd folds one more rating into a mean over count existing
// reviews. count must not include the review being added.
func RatingAfterAdd(current RatingState, added float64) float64 {
	n := float64(current.Count)
	return (current.Rating*n + added) / (n + 1)
}

// RatingAfterRemove takes one rating out of a mean over count reviews, where
// count still includes the review being removed. Removing the last review
// resets the mean to 0.
func RatingAfterRemove(current RatingState, removed float64) (float64, error) {
	switch {
	case current.Count <= 0:
		return 0, fmt.Errorf("remove rating from eatery with %d reviews: %w", current.Count, ErrInvalidState)
	case current.Count == 1:
		return 0, nil
	}
	n := float64(current.Count)
	return (current.Rating*n - removed) / (n - 1), nil
}

// MeanRating is the exact mean of ratings, 0 for none.
func MeanRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
