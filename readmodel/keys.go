// Package readmodel names the Redis keys that agg-svc writes and
// analytics-svc reads.
package readmodel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LeaderboardKey is a sorted set of eatery ids scored by rating. Only
	// eateries with at least one review are members.
	LeaderboardKey = "eateries:leaderboard"

	ModerationEateriesKey = "moderation:eateries"
	ModerationReviewsKey  = "moderation:reviews"

	DailyReviewsTTL = 7 * 24 * time.Hour
)

// Fields of the per-eatery snapshot hash.
const (
	FieldRating      = "rating"
	FieldReviewCount = "review_count"
	FieldFlagged     = "flagged"
	FieldLastUpdated = "last_updated"
)

func EateryKey(eateryID int) string {
	return "eatery:" + strconv.Itoa(eateryID)
}

// DailyReviewsKey is a sorted set of eatery ids scored by the number of
// reviews they received on day (UTC).
func DailyReviewsKey(day time.Time) string {
	return "reviews:daily:" + day.UTC().Format("2006-01-02")
}

func ReviewMember(eateryID, reviewID int) string {
	return fmt.Sprintf("%d:%d", eateryID, reviewID)
}

// ParseReviewMember splits a moderation:reviews member back into its ids.
func ParseReviewMember(member string) (eateryID, reviewID int, err error) {
	left, right, ok := strings.Cut(member, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed review member %q", member)
	}
	if eateryID, err = strconv.Atoi(left); err != nil {
		return 0, 0, fmt.Errorf("malformed review member %q: %w", member, err)
	}
	if reviewID, err = strconv.Atoi(right); err != nil {
		return 0, 0, fmt.Errorf("malformed review member %q: %w", member, err)
	}
	return eateryID, reviewID, nil
}
