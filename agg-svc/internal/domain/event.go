package domain

import (
	"errors"
	"math"
	"time"
)

var ErrNotFound = errors.New("not found")

type EventType string

const (
	EventEateryCreated    EventType = "eatery_created"
	EventEateryUpdated    EventType = "eatery_updated"
	EventEateryDeleted    EventType = "eatery_deleted"
	EventEateryFlagged    EventType = "eatery_flagged"
	EventEateryUnflagged  EventType = "eatery_unflagged"
	EventReviewAdded      EventType = "review_added"
	EventReviewDeleted    EventType = "review_deleted"
	EventReviewFlagged    EventType = "review_flagged"
	EventReviewUnflagged  EventType = "review_unflagged"
	EventRatingRecomputed EventType = "rating_recomputed"
)

// Event is the message eatery-svc publishes after each committed mutation.
type Event struct {
	Type        EventType `json:"type"`
	EateryID    int       `json:"eatery_id"`
	ReviewID    int       `json:"review_id,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Flag        bool      `json:"flag"`
	Timestamp   time.Time `json:"timestamp"`
}

// RatingDrift compares an eatery's stored aggregate with the mean computed
// from its reviews.
type RatingDrift struct {
	EateryID int
	Stored   float64
	Actual   float64
	Reviews  int
}

func (d RatingDrift) Delta() float64 {
	return math.Abs(d.Stored - d.Actual)
}
