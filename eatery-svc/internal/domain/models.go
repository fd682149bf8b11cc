package domain

import "time"

// Unknown is stored for an eatery's address or contact when none was given.
const Unknown = "Unknown"

type Eatery struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Contact string  `json:"contact"`
	WhyFlag string  `json:"why_flag"`
	Flag    bool    `json:"flag"`
	Rating  float64 `json:"rating"`
}

type Review struct {
	ID            int     `json:"id"`
	ReviewText    string  `json:"review_text"`
	Rating        float64 `json:"rating"`
	WhyFlag       string  `json:"why_flag"`
	Flag          bool    `json:"flag"`
	FlaggedBefore bool    `json:"flagged_before"`
	EateryID      int     `json:"eatery_id"`
}

// RatingState is an eatery's stored aggregate together with the number of
// reviews it was computed over.
type RatingState struct {
	Rating float64
	Count  int
}

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

type Event struct {
	Type        EventType `json:"type"`
	EateryID    int       `json:"eatery_id"`
	ReviewID    int       `json:"review_id,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Flag        bool      `json:"flag"`
	Timestamp   time.Time `json:"timestamp"`
}
