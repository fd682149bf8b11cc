package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eatery-reviews/eatery-svc/internal/domain"
	"eatery-reviews/eatery-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Eateries service.EateryServiceInterface
	Reviews  service.ReviewServiceInterface
	Log      *zap.Logger
}

func NewHandler(eateries service.EateryServiceInterface, reviews service.ReviewServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		Eateries: eateries,
		Reviews:  reviews,
		Log:      log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/eatery", h.getEateries).Methods("GET")
	r.HandleFunc("/eatery/add", h.addEatery).Methods("POST")
	r.HandleFunc("/eatery/{id:[0-9]+}", h.getEatery).Methods("GET")
	r.HandleFunc("/eatery/{id:[0-9]+}/update", h.updateEatery).Methods("PUT")
	r.HandleFunc("/eatery/{id:[0-9]+}/delete", h.deleteEatery).Methods("DELETE")
	r.HandleFunc("/eatery/{id:[0-9]+}/flag", h.flagEatery).Methods("PUT")
	r.HandleFunc("/eatery/{id:[0-9]+}/unflag", h.unflagEatery).Methods("PUT")
	r.HandleFunc("/eatery/{id:[0-9]+}/rating/recompute", h.recomputeRating).Methods("POST")
	r.HandleFunc("/eatery/{id:[0-9]+}/qrcode", h.getReviewQRCode).Methods("GET")

	r.HandleFunc("/eatery/{id:[0-9]+}/review", h.getReviews).Methods("GET")
	r.HandleFunc("/eatery/{id:[0-9]+}/review/add", h.addReview).Methods("POST")
	r.HandleFunc("/eatery/{id:[0-9]+}/review/{rid:[0-9]+}", h.getReview).Methods("GET")
	r.HandleFunc("/eatery/{id:[0-9]+}/review/{rid:[0-9]+}/delete", h.deleteReview).Methods("DELETE")
	r.HandleFunc("/eatery/{id:[0-9]+}/review/{rid:[0-9]+}/flag", h.flagReview).Methods("PUT")
	r.HandleFunc("/eatery/{id:[0-9]+}/review/{rid:[0-9]+}/unflag", h.unflagReview).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "eatery-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getEateries(w http.ResponseWriter, r *http.Request) {
	eateries, err := h.Eateries.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eateries)
}

func (h *Handler) getEatery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	eatery, err := h.Eateries.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) addEatery(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateEateryInput
	if !h.decode(w, r, &in) {
		return
	}
	eatery, err := h.Eateries.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) updateEatery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.UpdateEateryInput
	if !h.decode(w, r, &in) {
		return
	}
	eatery, err := h.Eateries.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) deleteEatery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	eatery, err := h.Eateries.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) flagEatery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.FlagInput
	if !h.decode(w, r, &in) {
		return
	}
	eatery, err := h.Eateries.Flag(r.Context(), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) unflagEatery(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	eatery, err := h.Eateries.Unflag(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) recomputeRating(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	eatery, err := h.Reviews.RecomputeRating(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eatery)
}

func (h *Handler) getReviewQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	png, err := h.Eateries.ReviewQRCode(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	reviews, err := h.Reviews.List(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	eateryID, reviewID, ok := h.reviewPath(w, r)
	if !ok {
		return
	}
	review, err := h.Reviews.Get(r.Context(), eateryID, reviewID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// reviewPayload accepts rating either as a JSON number or as a numeric
// string.
type reviewPayload struct {
	ReviewText string     `json:"review_text"`
	Rating     *flexFloat `json:"rating"`
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("rating must be a number, got %s", string(b))
	}
	*f = flexFloat(v)
	return nil
}

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var payload reviewPayload
	if !h.decode(w, r, &payload) {
		return
	}
	in := domain.CreateReviewInput{ReviewText: payload.ReviewText}
	if payload.Rating != nil {
		rating := float64(*payload.Rating)
		in.Rating = &rating
	}

	review, err := h.Reviews.Add(r.Context(), id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	eateryID, reviewID, ok := h.reviewPath(w, r)
	if !ok {
		return
	}
	review, err := h.Reviews.Delete(r.Context(), eateryID, reviewID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) flagReview(w http.ResponseWriter, r *http.Request) {
	eateryID, reviewID, ok := h.reviewPath(w, r)
	if !ok {
		return
	}
	var in domain.FlagInput
	if !h.decode(w, r, &in) {
		return
	}
	review, err := h.Reviews.Flag(r.Context(), eateryID, reviewID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) unflagReview(w http.ResponseWriter, r *http.Request) {
	eateryID, reviewID, ok := h.reviewPath(w, r)
	if !ok {
		return
	}
	review, err := h.Reviews.Unflag(r.Context(), eateryID, reviewID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: bad %s", domain.ErrInvalidArgument, name))
		return 0, false
	}
	return id, true
}

func (h *Handler) reviewPath(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	eateryID, ok := h.pathID(w, r, "id")
	if !ok {
		return 0, 0, false
	}
	reviewID, ok := h.pathID(w, r, "rid")
	if !ok {
		return 0, 0, false
	}
	return eateryID, reviewID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err))
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	default:
		h.logger().Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
