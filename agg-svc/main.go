package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eatery-reviews/agg-svc/internal/service"
	"eatery-reviews/agg-svc/internal/storage"
	"eatery-reviews/config"
)

type Config struct {
	GroupID        string  `env:"KAFKA_GROUP_ID" envDefault:"agg-svc-consumer"`
	DriftTolerance float64 `env:"DRIFT_TOLERANCE" envDefault:"1e-6"`

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

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka, cfg.GroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), logger)
	consumer.DriftTolerance = cfg.DriftTolerance
	consumer.Start(ctx)
}
