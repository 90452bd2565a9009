package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Serializes concurrent seed attempts across processes.
const seedLockID int64 = 574201338

// SeedStringers inserts the first-run stringer roster when the table is
// empty, otherwise does nothing. Safe to call on every startup.
func SeedStringers(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, seedLockID); err != nil {
		return fmt.Errorf("acquire seed lock: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, seedLockID)
	}()

	const stmt = `
INSERT INTO stringers (name, rate_per_racket, availability, capacity_today, rating_quality, rating_punctuality, location)
SELECT v.name, v.rate, v.availability, v.capacity, v.quality, v.punctuality, v.location
FROM (VALUES
	('Alex Kim', 22.0, 'Today 1–5pm', 4, 4.8, 4.6, 'La Jolla'),
	('Maria G', 18.0, 'Today 3–8pm', 6, 4.5, 4.9, 'UTC'),
	('Jay S', 25.0, 'Tomorrow 9–2pm', 0, 4.9, 4.7, 'PB')
) AS v (name, rate, availability, capacity, quality, punctuality, location)
WHERE NOT EXISTS (SELECT 1 FROM stringers)`

	if _, err := conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("seed stringers: %w", err)
	}
	return nil
}
