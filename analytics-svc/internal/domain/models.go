package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

type EateryRanking struct {
	EateryID    int     `json:"eatery_id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

type EateryStats struct {
	EateryID    int       `json:"eatery_id"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Flagged     bool      `json:"flagged"`
	LastUpdated time.Time `json:"last_updated"`
}

// TrendingEatery counts the reviews an eatery received on one day.
type TrendingEatery struct {
	EateryID int    `json:"eatery_id"`
	Name     string `json:"name"`
	Reviews  int    `json:"reviews"`
}

type FlaggedReview struct {
	EateryID int `json:"eatery_id"`
	ReviewID int `json:"review_id"`
}

type ModerationQueue struct {
	Eateries []int           `json:"eateries"`
	Reviews  []FlaggedReview `json:"reviews"`
}

func (q *ModerationQueue) Empty() bool {
	return len(q.Eateries) == 0 && len(q.Reviews) == 0
}

// Distribution maps floor(rating), as a string, to the number of reviews in
// that bucket.
type Distribution map[string]int
