package main

import (
	"fmt"
	"os"

	httpapi "eatery-reviews/analytics-svc/internal/api/http"
	"eatery-reviews/analytics-svc/internal/service"
	"eatery-reviews/analytics-svc/internal/storage"
	"eatery-reviews/config"
)

type Config struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8082"`

	Log      config.Log
	Postgres config.Postgres
	Redis    config.Redis
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

	db := config.MustInitPostgres(cfg.Postgres, logger)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	svc := service.NewAnalyticsService(storage.NewRedisReadModel(rdb), storage.NewPostgresReader(db), logger)
	handler := httpapi.NewHandler(svc, logger)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}
