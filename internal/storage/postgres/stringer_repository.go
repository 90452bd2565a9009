package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

type StringerRepository struct {
	pool *pgxpool.Pool
}

func NewStringerRepository(pool *pgxpool.Pool) *StringerRepository {
	return &StringerRepository{pool: pool}
}

func (r *StringerRepository) Create(ctx context.Context, s domain.Stringer) (int64, error) {
	const stmt = `
INSERT INTO stringers (name, rate_per_racket, availability, capacity_today, rating_quality, rating_punctuality, location)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	var id int64
	err := r.queryRow(ctx, stmt,
		s.Name,
		s.RatePerRacket,
		s.Availability,
		s.CapacityToday,
		s.RatingQuality,
		s.RatingPunctuality,
		s.Location,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create stringer: %w", err)
	}
	return id, nil
}

func (r *StringerRepository) Get(ctx context.Context, id int64) (domain.Stringer, error) {
	const query = `
SELECT id, name, rate_per_racket, availability, capacity_today, rating_quality, rating_punctuality, location
FROM stringers
WHERE id = $1`

	var s domain.Stringer
	err := r.queryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.RatePerRacket,
		&s.Availability,
		&s.CapacityToday,
		&s.RatingQuality,
		&s.RatingPunctuality,
		&s.Location,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Stringer{}, domain.ErrStringerNotFound
		}
		return domain.Stringer{}, fmt.Errorf("get stringer: %w", err)
	}
	return s, nil
}

// List returns all stringers in insertion order.
func (r *StringerRepository) List(ctx context.Context) ([]domain.Stringer, error) {
	const query = `
SELECT id, name, rate_per_racket, availability, capacity_today, rating_quality, rating_punctuality, location
FROM stringers
ORDER BY id`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stringers: %w", err)
	}
	defer rows.Close()

	var out []domain.Stringer
	for rows.Next() {
		var s domain.Stringer
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.RatePerRacket,
			&s.Availability,
			&s.CapacityToday,
			&s.RatingQuality,
			&s.RatingPunctuality,
			&s.Location,
		); err != nil {
			return nil, fmt.Errorf("scan stringer: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stringers: %w", err)
	}
	return out, nil
}

func (r *StringerRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *StringerRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
