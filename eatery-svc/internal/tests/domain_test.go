package tests

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"eatery-reviews/eatery-svc/internal/domain"
	"eatery-reviews/eatery-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingAfterAdd(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.RatingState
		added    float64
		expected float64
	}{
		{"first_review", domain.RatingState{}, 4, 4},
		{"second_review", domain.RatingState{Rating: 4, Count: 1}, 5, 4.5},
		{"negative_allowed", domain.RatingState{Rating: 1, Count: 1}, -1, 0},
		{"many_reviews", domain.RatingState{Rating: 3, Count: 9}, 13, 4},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.InDelta(t, testCase.expected, domain.RatingAfterAdd(testCase.state, testCase.added), 1e-12)
		})
	}
}

func TestRatingAfterRemove(t *testing.T) {
	got, err := domain.RatingAfterRemove(domain.RatingState{Rating: 4.5, Count: 2}, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = domain.RatingAfterRemove(domain.RatingState{Rating: 5, Count: 1}, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = domain.RatingAfterRemove(domain.RatingState{}, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestMeanRating(t *testing.T) {
	assert.Equal(t, 0.0, domain.MeanRating(nil))
	assert.Equal(t, 3.0, domain.MeanRating([]domain.Review{{Rating: 2}, {Rating: 3}, {Rating: 4}}))
}

func TestValidateInputs(t *testing.T) {
	long := string(bytes.Repeat([]byte("a"), 257))

	tests := []struct {
		name    string
		input   any
		message string
	}{
		{"eatery_ok", domain.CreateEateryInput{Name: "Cafe", Address: domain.Unknown, Contact: domain.Unknown}, ""},
		{"eatery_missing_name", domain.CreateEateryInput{}, "name is required"},
		{"eatery_long_address", domain.UpdateEateryInput{Name: "Cafe", Address: long}, "address must be at most 256 characters"},
		{"flag_missing_reason", domain.FlagInput{}, "why_flag is required"},
		{"review_ok", domain.CreateReviewInput{ReviewText: "ok", Rating: rating(-3)}, ""},
		{"review_missing_rating", domain.CreateReviewInput{ReviewText: "ok"}, "rating is required"},
		{"review_nan_rating", domain.CreateReviewInput{ReviewText: "ok", Rating: rating(math.NaN())}, "rating must be a finite number"},
		{"review_inf_rating", domain.CreateReviewInput{ReviewText: "ok", Rating: rating(math.Inf(1))}, "rating must be a finite number"},
		{"review_rating_at_bound", domain.CreateReviewInput{ReviewText: "ok", Rating: rating(-domain.MaxRatingMagnitude)}, ""},
		{"review_rating_too_large", domain.CreateReviewInput{ReviewText: "ok", Rating: rating(1e308)}, "rating must be at most 1000000"},
		{"review_rating_too_small", domain.CreateReviewInput{ReviewText: "ok", Rating: rating(-1e308)}, "rating must be at least -1000000"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := domain.Validate(testCase.input)
			if testCase.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), testCase.message)
		})
	}
}

func TestRatingAfterAdd_StaysFiniteAtBound(t *testing.T) {
	state := domain.RatingState{Rating: domain.MaxRatingMagnitude, Count: 1}
	for i := 0; i < 1000; i++ {
		state.Rating = domain.RatingAfterAdd(state, domain.MaxRatingMagnitude)
		state.Count++
	}
	assert.False(t, math.IsInf(state.Rating, 0))
	assert.InDelta(t, domain.MaxRatingMagnitude, state.Rating, 1e-6)
}

func TestNormalizeDefaultsUnknown(t *testing.T) {
	in := domain.UpdateEateryInput{Name: "  Cafe  ", Address: "   ", Contact: " 555 "}
	in.Normalize()
	assert.Equal(t, "Cafe", in.Name)
	assert.Equal(t, domain.Unknown, in.Address)
	assert.Equal(t, "555", in.Contact)
}

func TestDefaultQRGenerator_ProducesPNG(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "https://reviews.example.com/", Size: 128}

	raw, err := gen.Generate(42)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
