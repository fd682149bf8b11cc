package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	EaterySvcURL    string `env:"EATERY_SVC_URL" envDefault:"http://localhost:8081"`
	AnalyticsSvcURL string `env:"ANALYTICS_SVC_URL" envDefault:"http://localhost:8082"`
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *zap.Logger
}

func NewGateway(config Config, client HTTPClient, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.log.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", url))

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.Error("failed to create upstream request", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Warn("upstream unavailable", zap.String("target", targetURL), zap.Error(err))
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Warn("failed to copy upstream response", zap.Error(err))
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/eatery" || strings.HasPrefix(path, "/eatery/"):
		g.ProxyRequest(w, r, g.config.EaterySvcURL)
	case strings.HasPrefix(path, "/api/analytics/"):
		g.ProxyRequest(w, r, g.config.AnalyticsSvcURL)
	default:
		g.log.Debug("unmatched route", zap.String("path", path))
		writeError(w, http.StatusNotFound, "route not found")
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
