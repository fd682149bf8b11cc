package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "eatery-reviews/eatery-svc/internal/api/http"
	"eatery-reviews/eatery-svc/internal/domain"
	"eatery-reviews/eatery-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(eateries *mocks.EateryServiceInterface, reviews *mocks.ReviewServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Eateries: eateries, Reviews: reviews}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_addEatery(t *testing.T) {
	eateries := mocks.NewEateryServiceInterface(t)
	router := setupTestRouter(eateries, mocks.NewReviewServiceInterface(t))

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"name":"Cafe"}`,
			prepareMocks: func() {
				eateries.On("Create", mock.Anything, domain.CreateEateryInput{Name: "Cafe"}).
					Return(&domain.Eatery{ID: 1, Name: "Cafe", Address: domain.Unknown, Contact: domain.Unknown}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"address":"Unknown"`,
		},
		{
			name:         "invalid_json",
			payload:      `not json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "missing_name",
			payload: `{"address":"Main St"}`,
			prepareMocks: func() {
				eateries.On("Create", mock.Anything, domain.CreateEateryInput{Address: "Main St"}).
					Return(nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `name is required`,
		},
		{
			name:    "storage_failure",
			payload: `{"name":"Cafe"}`,
			prepareMocks: func() {
				eateries.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/eatery/add", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getEatery(t *testing.T) {
	eateries := mocks.NewEateryServiceInterface(t)
	router := setupTestRouter(eateries, mocks.NewReviewServiceInterface(t))

	eateries.On("Get", mock.Anything, 3).Return(&domain.Eatery{ID: 3, Name: "Diner", Rating: 4.5}, nil).Once()
	eateries.On("Get", mock.Anything, 4).Return(nil, fmt.Errorf("eatery 4: %w", domain.ErrNotFound)).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/eatery/3", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var eatery domain.Eatery
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&eatery))
	assert.Equal(t, 4.5, eatery.Rating)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/eatery/4", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/eatery/abc", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_getEateries(t *testing.T) {
	eateries := mocks.NewEateryServiceInterface(t)
	router := setupTestRouter(eateries, mocks.NewReviewServiceInterface(t))

	eateries.On("List", mock.Anything).Return([]domain.Eatery{}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/eatery", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHandler_flagEatery(t *testing.T) {
	eateries := mocks.NewEateryServiceInterface(t)
	router := setupTestRouter(eateries, mocks.NewReviewServiceInterface(t))

	eateries.On("Flag", mock.Anything, 1, domain.FlagInput{Reason: "spam"}).
		Return(&domain.Eatery{ID: 1, Flag: true, WhyFlag: "spam"}, nil).Once()
	eateries.On("Unflag", mock.Anything, 1).Return(&domain.Eatery{ID: 1}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/eatery/1/flag", bytes.NewBufferString(`{"why_flag":"spam"}`)))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"flag":true`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/eatery/1/unflag", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"why_flag":""`)
}

func TestHandler_deleteEatery(t *testing.T) {
	eateries := mocks.NewEateryServiceInterface(t)
	router := setupTestRouter(eateries, mocks.NewReviewServiceInterface(t))

	eateries.On("Delete", mock.Anything, 2).Return(&domain.Eatery{ID: 2, Name: "Gone"}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/eatery/2/delete", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Gone"`)
}

func TestHandler_getReviewQRCode(t *testing.T) {
	eateries := mocks.NewEateryServiceInterface(t)
	router := setupTestRouter(eateries, mocks.NewReviewServiceInterface(t))

	eateries.On("ReviewQRCode", mock.Anything, 2).Return([]byte("\x89PNG"), nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/eatery/2/qrcode", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", recorder.Body.String())
}

func TestHandler_addReview(t *testing.T) {
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mocks.NewEateryServiceInterface(t), reviews)

	ratingIs := func(expected float64) interface{} {
		return mock.MatchedBy(func(in domain.CreateReviewInput) bool {
			return in.Rating != nil && *in.Rating == expected
		})
	}

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "numeric_rating",
			payload: `{"review_text":"great","rating":4.5}`,
			prepareMocks: func() {
				reviews.On("Add", mock.Anything, 1, ratingIs(4.5)).
					Return(&domain.Review{ID: 1, EateryID: 1, ReviewText: "great", Rating: 4.5}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "string_rating",
			payload: `{"review_text":"fine","rating":" 3 "}`,
			prepareMocks: func() {
				reviews.On("Add", mock.Anything, 1, ratingIs(3)).
					Return(&domain.Review{ID: 2, EateryID: 1, ReviewText: "fine", Rating: 3}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "non_numeric_rating",
			payload:      `{"review_text":"fine","rating":"five"}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_eatery",
			payload: `{"review_text":"fine","rating":3}`,
			prepareMocks: func() {
				reviews.On("Add", mock.Anything, 1, mock.Anything).
					Return(nil, fmt.Errorf("eatery 1: %w", domain.ErrNotFound)).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/eatery/1/review/add", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_deleteReview(t *testing.T) {
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mocks.NewEateryServiceInterface(t), reviews)

	reviews.On("Delete", mock.Anything, 1, 5).Return(&domain.Review{ID: 5, EateryID: 1, Rating: 2}, nil).Once()
	reviews.On("Delete", mock.Anything, 2, 5).Return(nil, fmt.Errorf("review 5: %w", domain.ErrNotFound)).Once()
	reviews.On("Delete", mock.Anything, 3, 6).Return(nil, fmt.Errorf("count 0: %w", domain.ErrInvalidState)).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/eatery/1/review/5/delete", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/eatery/2/review/5/delete", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/eatery/3/review/6/delete", nil))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_flagReview(t *testing.T) {
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mocks.NewEateryServiceInterface(t), reviews)

	reviews.On("Flag", mock.Anything, 1, 5, domain.FlagInput{Reason: "abusive"}).
		Return(&domain.Review{ID: 5, EateryID: 1, Flag: true, FlaggedBefore: true, WhyFlag: "abusive"}, nil).Once()
	reviews.On("Unflag", mock.Anything, 1, 5).
		Return(&domain.Review{ID: 5, EateryID: 1, FlaggedBefore: true}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/eatery/1/review/5/flag", bytes.NewBufferString(`{"why_flag":"abusive"}`)))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"flagged_before":true`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/eatery/1/review/5/unflag", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"flag":false`)
	assert.Contains(t, recorder.Body.String(), `"flagged_before":true`)
}

func TestHandler_getReviews(t *testing.T) {
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mocks.NewEateryServiceInterface(t), reviews)

	reviews.On("List", mock.Anything, 1).Return([]domain.Review{{ID: 1, EateryID: 1}, {ID: 2, EateryID: 1}}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/eatery/1/review", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var got []domain.Review
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestHandler_recomputeRating(t *testing.T) {
	reviews := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mocks.NewEateryServiceInterface(t), reviews)

	reviews.On("RecomputeRating", mock.Anything, 1).Return(&domain.Eatery{ID: 1, Rating: 3}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/eatery/1/rating/recompute", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rating":3`)
}

func TestRouter_HealthAndAccessLog(t *testing.T) {
	handler := httpapi.NewHandler(mocks.NewEateryServiceInterface(t), mocks.NewReviewServiceInterface(t), nil)
	router := httpapi.NewRouter(handler)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"service":"eatery-svc"`)
}
