package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferenceRepo struct {
	pool *pgxpool.Pool
}

func NewPreferenceRepo(pool *pgxpool.Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// IncrementTags upserts one unit per tag. Each upsert is a single atomic
// statement, so concurrent views by the same user commute without a
// read-modify-write race.
func (r *PreferenceRepo) IncrementTags(ctx context.Context, userID uuid.UUID, tags []string, now time.Time) error {
	if len(tags) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, tag := range tags {
		batch.Queue(`
INSERT INTO user_tag_preferences (user_id, tag, weight, updated_at)
VALUES ($1, $2, 1, $3)
ON CONFLICT (user_id, tag)
DO UPDATE SET weight = user_tag_preferences.weight + 1, updated_at = EXCLUDED.updated_at
`, userID, tag, now)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range tags {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *PreferenceRepo) Weights(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	rows, err := r.pool.Query(ctx, `
SELECT tag, weight FROM user_tag_preferences WHERE user_id = $1
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]float64{}
	for rows.Next() {
		var tag string
		var weight float64
		if err := rows.Scan(&tag, &weight); err != nil {
			return nil, err
		}
		out[tag] = weight
	}
	return out, rows.Err()
}
