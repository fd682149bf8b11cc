package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eatery-reviews/eatery-svc/internal/domain"
)

const (
	eateryColumns = "id, name, address, contact, why_flag, flag, rating"
	reviewColumns = "id, review_text, rating, why_flag, flag, flagged_before, eatery_id"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEatery(row rowScanner) (*domain.Eatery, error) {
	var e domain.Eatery
	if err := row.Scan(&e.ID, &e.Name, &e.Address, &e.Contact, &e.WhyFlag, &e.Flag, &e.Rating); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var r domain.Review
	if err := row.Scan(&r.ID, &r.ReviewText, &r.Rating, &r.WhyFlag, &r.Flag, &r.FlaggedBefore, &r.EateryID); err != nil {
		return nil, err
	}
	return &r, nil
}

func eateryNotFound(id int) error {
	return fmt.Errorf("eatery %d: %w", id, domain.ErrNotFound)
}

func reviewNotFound(eateryID, reviewID int) error {
	return fmt.Errorf("review %d of eatery %d: %w", reviewID, eateryID, domain.ErrNotFound)
}

// noRows maps sql.ErrNoRows to notFound and passes other errors through.
func noRows(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}

func (r *PostgresRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) ListEateries(ctx context.Context) ([]domain.Eatery, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+eateryColumns+` FROM eateries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eateries := make([]domain.Eatery, 0)
	for rows.Next() {
		e, err := scanEatery(rows)
		if err != nil {
			return nil, err
		}
		eateries = append(eateries, *e)
	}
	return eateries, rows.Err()
}

func (r *PostgresRepository) GetEatery(ctx context.Context, id int) (*domain.Eatery, error) {
	e, err := scanEatery(r.DB.QueryRowContext(ctx,
		`SELECT `+eateryColumns+` FROM eateries WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err, eateryNotFound(id))
	}
	return e, nil
}

func (r *PostgresRepository) CreateEatery(ctx context.Context, eatery *domain.Eatery) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO eateries (name, address, contact)
		VALUES ($1, $2, $3)
		RETURNING id, why_flag, flag, rating
	`, eatery.Name, eatery.Address, eatery.Contact).
		Scan(&eatery.ID, &eatery.WhyFlag, &eatery.Flag, &eatery.Rating)
}

func (r *PostgresRepository) UpdateEatery(ctx context.Context, eatery *domain.Eatery) error {
	updated, err := scanEatery(r.DB.QueryRowContext(ctx, `
		UPDATE eateries SET name = $1, address = $2, contact = $3
		WHERE id = $4
		RETURNING `+eateryColumns,
		eatery.Name, eatery.Address, eatery.Contact, eatery.ID))
	if err != nil {
		return noRows(err, eateryNotFound(eatery.ID))
	}
	*eatery = *updated
	return nil
}

// DeleteEatery removes the eatery's reviews and then the eatery in one
// transaction and returns the eatery as it was before deletion.
func (r *PostgresRepository) DeleteEatery(ctx context.Context, id int) (*domain.Eatery, error) {
	var deleted *domain.Eatery
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE eatery_id = $1`, id); err != nil {
			return err
		}
		e, err := scanEatery(tx.QueryRowContext(ctx,
			`DELETE FROM eateries WHERE id = $1 RETURNING `+eateryColumns, id))
		if err != nil {
			return noRows(err, eateryNotFound(id))
		}
		deleted = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *PostgresRepository) FlagEatery(ctx context.Context, id int, reason string) (*domain.Eatery, error) {
	e, err := scanEatery(r.DB.QueryRowContext(ctx, `
		UPDATE eateries SET flag = TRUE, why_flag = $1
		WHERE id = $2
		RETURNING `+eateryColumns, reason, id))
	if err != nil {
		return nil, noRows(err, eateryNotFound(id))
	}
	return e, nil
}

func (r *PostgresRepository) UnflagEatery(ctx context.Context, id int) (*domain.Eatery, error) {
	e, err := scanEatery(r.DB.QueryRowContext(ctx, `
		UPDATE eateries SET flag = FALSE, why_flag = ''
		WHERE id = $1
		RETURNING `+eateryColumns, id))
	if err != nil {
		return nil, noRows(err, eateryNotFound(id))
	}
	return e, nil
}

func (r *PostgresRepository) SetRating(ctx context.Context, id int, rating float64) error {
	return setRating(ctx, r.DB, id, rating)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setRating(ctx context.Context, db execer, id int, rating float64) error {
	result, err := db.ExecContext(ctx, `UPDATE eateries SET rating = $1 WHERE id = $2`, rating, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return eateryNotFound(id)
	}
	return nil
}

func (r *PostgresRepository) ListReviews(ctx context.Context, eateryID int) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE eatery_id = $1 ORDER BY id`, eateryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) GetReview(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	rev, err := scanReview(r.DB.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1 AND eatery_id = $2`, reviewID, eateryID))
	if err != nil {
		return nil, noRows(err, reviewNotFound(eateryID, reviewID))
	}
	return rev, nil
}

func (r *PostgresRepository) RatingState(ctx context.Context, eateryID int) (domain.RatingState, error) {
	var state domain.RatingState
	err := r.DB.QueryRowContext(ctx, `
		SELECT e.rating, (SELECT COUNT(*) FROM reviews r WHERE r.eatery_id = e.id)
		FROM eateries e
		WHERE e.id = $1
	`, eateryID).Scan(&state.Rating, &state.Count)
	if err != nil {
		return domain.RatingState{}, noRows(err, eateryNotFound(eateryID))
	}
	return state, nil
}

// InsertReview stores the review and the eatery's new aggregate together.
func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review, eateryRating float64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO reviews (review_text, rating, eatery_id)
			VALUES ($1, $2, $3)
			RETURNING id, why_flag, flag, flagged_before
		`, review.ReviewText, review.Rating, review.EateryID).
			Scan(&review.ID, &review.WhyFlag, &review.Flag, &review.FlaggedBefore); err != nil {
			return err
		}
		return setRating(ctx, tx, review.EateryID, eateryRating)
	})
}

// DeleteReview removes the review and stores the eatery's new aggregate
// together.
func (r *PostgresRepository) DeleteReview(ctx context.Context, eateryID, reviewID int, eateryRating float64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM reviews WHERE id = $1 AND eatery_id = $2`, reviewID, eateryID)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return reviewNotFound(eateryID, reviewID)
		}
		return setRating(ctx, tx, eateryID, eateryRating)
	})
}

func (r *PostgresRepository) FlagReview(ctx context.Context, eateryID, reviewID int, reason string) (*domain.Review, error) {
	rev, err := scanReview(r.DB.QueryRowContext(ctx, `
		UPDATE reviews SET flag = TRUE, flagged_before = TRUE, why_flag = $1
		WHERE id = $2 AND eatery_id = $3
		RETURNING `+reviewColumns, reason, reviewID, eateryID))
	if err != nil {
		return nil, noRows(err, reviewNotFound(eateryID, reviewID))
	}
	return rev, nil
}

func (r *PostgresRepository) UnflagReview(ctx context.Context, eateryID, reviewID int) (*domain.Review, error) {
	rev, err := scanReview(r.DB.QueryRowContext(ctx, `
		UPDATE reviews SET flag = FALSE, why_flag = ''
		WHERE id = $1 AND eatery_id = $2
		RETURNING `+reviewColumns, reviewID, eateryID))
	if err != nil {
		return nil, noRows(err, reviewNotFound(eateryID, reviewID))
	}
	return rev, nil
}
