package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"eatery-reviews/api-gateway/internal/gateway"
	"eatery-reviews/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Log      config.Log
	Upstream gateway.Config
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	gw := gateway.NewGateway(cfg.Upstream, &http.Client{Timeout: cfg.UpstreamTimeout}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	logger.Info("API Gateway starting", zap.String("addr", cfg.Addr))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(cfg.Addr, handler)))
}
