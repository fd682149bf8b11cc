package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eatery-reviews/analytics-svc/internal/domain"
	"eatery-reviews/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Log       *zap.Logger
}

func NewHandler(svc service.AnalyticsInterface, log *zap.Logger) *Handler {
	return &Handler{Analytics: svc, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"service":   "analytics-svc",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-eateries", h.getTopEateries).Methods("GET")
	r.HandleFunc("/api/analytics/trending", h.getTrending).Methods("GET")
	r.HandleFunc("/api/analytics/moderation", h.getModeration).Methods("GET")
	r.HandleFunc("/api/analytics/eatery/{id:[0-9]+}/stats", h.getEateryStats).Methods("GET")
	r.HandleFunc("/api/analytics/eatery/{id:[0-9]+}/distribution", h.getRatingDistribution).Methods("GET")
}

func (h *Handler) getTopEateries(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.queryLimit(w, r)
	if !ok {
		return
	}
	data, err := h.Analytics.TopEateries(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getTrending(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.queryLimit(w, r)
	if !ok {
		return
	}
	data, err := h.Analytics.Trending(r.Context(), r.URL.Query().Get("date"), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getModeration(w http.ResponseWriter, r *http.Request) {
	queue, err := h.Analytics.Moderation(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

func (h *Handler) getEateryStats(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	stats, err := h.Analytics.EateryStats(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	data, err := h.Analytics.RatingDistribution(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: bad eatery id", domain.ErrInvalidArgument))
		return 0, false
	}
	return id, true
}

// queryLimit reads ?limit=; absent means the service default.
func (h *Handler) queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		h.writeError(w, fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidArgument))
		return 0, false
	}
	return limit, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	default:
		if h.Log != nil {
			h.Log.Error("analytics request failed", zap.Error(err))
		}
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
