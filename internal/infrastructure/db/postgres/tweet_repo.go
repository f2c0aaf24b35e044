package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream/internal/domain"
)

type TweetRepo struct {
	pool *pgxpool.Pool
}

func NewTweetRepo(pool *pgxpool.Pool) *TweetRepo {
	return &TweetRepo{pool: pool}
}

func (r *TweetRepo) Insert(ctx context.Context, t *domain.Tweet) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO tweets (id, owner_id, content, created_at) VALUES ($1, $2, $3, $4)
`, t.ID, t.OwnerID, t.Content, t.CreatedAt)
	return err
}

func (r *TweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, content, created_at FROM tweets WHERE id = $1
`, id)

	var t domain.Tweet
	err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("tweet not found")
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TweetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tweet, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, content, created_at
FROM tweets WHERE owner_id = $1
ORDER BY created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Tweet{}
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TweetRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	_, err := r.pool.Exec(ctx, `UPDATE tweets SET content = $2 WHERE id = $1`, id, content)
	return err
}

func (r *TweetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	return err
}
