package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"eateries"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

// DSN renders the lib/pq key=value connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

type Redis struct {
	Host string `env:"REDIS_HOST" envDefault:"localhost"`
	Port string `env:"REDIS_PORT" envDefault:"6379"`
}

func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

type Kafka struct {
	Broker string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	Topic  string `env:"KAFKA_TOPIC" envDefault:"eatery-events"`
}

func MustInitPostgres(cfg Postgres, log *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		log.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db
}

func MustInitRedis(cfg Redis, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err), zap.String("addr", cfg.Addr()))
	}

	return client
}

func NewKafkaReader(cfg Kafka, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}
}
