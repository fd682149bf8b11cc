package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"eatery-reviews/config"
	httpapi "eatery-reviews/eatery-svc/internal/api/http"
	"eatery-reviews/eatery-svc/internal/service"
	"eatery-reviews/eatery-svc/internal/storage"

	"go.uber.org/zap"
)

type Config struct {
	Addr          string        `env:"HTTP_ADDR" envDefault:":8081"`
	LockBackend   string        `env:"LOCK_BACKEND" envDefault:"local"`
	LockTTL       time.Duration `env:"LOCK_TTL" envDefault:"5s"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	PublishEvents bool          `env:"PUBLISH_EVENTS" envDefault:"true"`

	Log      config.Log
	Postgres config.Postgres
	Redis    config.Redis
	Kafka    config.Kafka
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

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	var locker service.EateryLocker = storage.NewLocalLocker()
	if cfg.LockBackend == "redis" {
		rdb := config.MustInitRedis(cfg.Redis, logger)
		defer rdb.Close()
		locker = storage.NewRedisLocker(rdb, cfg.LockTTL, logger)
	}

	var publisher service.EventPublisher
	if cfg.PublishEvents {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		logger.Warn("event publishing disabled")
	}

	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}
	eateries := service.NewEateryService(repository, locker, publisher, qr, logger)
	reviews := service.NewReviewService(repository, repository, locker, publisher, logger)

	handler := httpapi.NewHandler(eateries, reviews, logger)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}
