package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler, log *zap.Logger) {
	log.Info("Analytics Service starting", zap.String("addr", addr))
	log.Fatal("server stopped", zap.Error(http.ListenAndServe(addr, handler)))
}
