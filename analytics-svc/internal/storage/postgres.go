package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"eatery-reviews/analytics-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresReader struct {
	db *sql.DB
}

func NewPostgresReader(db *sql.DB) *PostgresReader {
	return &PostgresReader{db: db}
}

func (p *PostgresReader) EateryNames(ctx context.Context, ids []int) (map[int]string, error) {
	ids64 := make([]int64, len(ids))
	for i, id := range ids {
		ids64[i] = int64(id)
	}
	rows, err := p.db.QueryContext(ctx, `SELECT id, name FROM eateries WHERE id = ANY($1)`, pq.Array(ids64))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int]string, len(ids))
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// TopRated ranks eateries that have at least one review by their stored
// rating.
func (p *PostgresReader) TopRated(ctx context.Context, limit int) ([]domain.EateryRanking, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT e.id, e.name, e.rating, COUNT(r.id)
		FROM eateries e
		JOIN reviews r ON r.eatery_id = e.id
		GROUP BY e.id, e.name, e.rating
		ORDER BY e.rating DESC, e.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rankings := make([]domain.EateryRanking, 0)
	for rows.Next() {
		var r domain.EateryRanking
		if err := rows.Scan(&r.EateryID, &r.Name, &r.Rating, &r.ReviewCount); err != nil {
			return nil, err
		}
		rankings = append(rankings, r)
	}
	return rankings, rows.Err()
}

func (p *PostgresReader) RatingDistribution(ctx context.Context, eateryID int) (domain.Distribution, error) {
	var exists bool
	if err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM eateries WHERE id = $1)`, eateryID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("eatery %d: %w", eateryID, domain.ErrNotFound)
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT FLOOR(rating)::BIGINT AS bucket, COUNT(*)
		FROM reviews
		WHERE eatery_id = $1
		GROUP BY bucket
		ORDER BY bucket
	`, eateryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := domain.Distribution{}
	for rows.Next() {
		var bucket int64
		var count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, err
		}
		distribution[strconv.FormatInt(bucket, 10)] = count
	}
	return distribution, rows.Err()
}

func (p *PostgresReader) Moderation(ctx context.Context) (*domain.ModerationQueue, error) {
	queue := &domain.ModerationQueue{
		Eateries: make([]int, 0),
		Reviews:  make([]domain.FlaggedReview, 0),
	}

	rows, err := p.db.QueryContext(ctx, `SELECT id FROM eateries WHERE flag ORDER BY id`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		queue.Eateries = append(queue.Eateries, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = p.db.QueryContext(ctx, `SELECT eatery_id, id FROM reviews WHERE flag ORDER BY eatery_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var fr domain.FlaggedReview
		if err := rows.Scan(&fr.EateryID, &fr.ReviewID); err != nil {
			return nil, err
		}
		queue.Reviews = append(queue.Reviews, fr)
	}
	return queue, rows.Err()
}
