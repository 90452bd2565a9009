package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetStringerForUpdate locks the stringer row for the duration of the
// surrounding transaction so concurrent bookings on the same stringer
// serialize instead of losing capacity updates.
func (r *BookingRepository) GetStringerForUpdate(ctx context.Context, stringerID int64) (domain.Stringer, error) {
	const query = `
SELECT id, name, rate_per_racket, availability, capacity_today, rating_quality, rating_punctuality, location
FROM stringers
WHERE id = $1
FOR UPDATE`

	var s domain.Stringer
	err := r.queryRow(ctx, query, stringerID).Scan(
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
		return domain.Stringer{}, fmt.Errorf("get stringer for update: %w", err)
	}
	return s, nil
}

func (r *BookingRepository) UpdateStringerCapacity(ctx context.Context, stringerID int64, capacity int) error {
	const stmt = `UPDATE stringers SET capacity_today = $1 WHERE id = $2`

	tag, err := r.exec(ctx, stmt, capacity, stringerID)
	if err != nil {
		return fmt.Errorf("update stringer capacity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStringerNotFound
	}
	return nil
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b domain.Booking) (int64, error) {
	const stmt = `
INSERT INTO bookings (stringer_id, player_name, notes, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	err := r.queryRow(ctx, stmt, b.StringerID, b.PlayerName, b.Notes, b.CreatedAt).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrStringerNotFound
		}
		return 0, fmt.Errorf("create booking: %w", err)
	}
	return id, nil
}

// ListByStringer returns a stringer's bookings in insertion order.
func (r *BookingRepository) ListByStringer(ctx context.Context, stringerID int64) ([]domain.Booking, error) {
	const query = `
SELECT id, stringer_id, player_name, notes, created_at
FROM bookings
WHERE stringer_id = $1
ORDER BY id`

	rows, err := r.query(ctx, query, stringerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.StringerID, &b.PlayerName, &b.Notes, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) CountByStringer(ctx context.Context, stringerID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE stringer_id = $1`

	var count int
	if err := r.queryRow(ctx, query, stringerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *BookingRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *BookingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *BookingRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
