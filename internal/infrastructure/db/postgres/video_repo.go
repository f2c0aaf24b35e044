package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream/internal/application/catalog"
	"github.com/vidstream/vidstream/internal/domain"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.media_url, v.thumbnail_url,
       v.duration, v.views, v.tags, v.is_published, v.created_at, v.updated_at`

const ownerColumns = `u.id, u.user_name, u.full_name, u.avatar_url`

func (r *VideoRepo) Insert(ctx context.Context, v *domain.Video) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO videos (id, owner_id, title, description, media_url, thumbnail_url,
                    duration, tags, is_published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, v.ID, v.OwnerID, v.Title, v.Description, v.MediaURL, v.ThumbnailURL,
		v.Duration, v.Tags, v.IsPublished, v.CreatedAt, v.UpdatedAt)
	return err
}

func (r *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+videoColumns+`
FROM videos v
WHERE v.id = $1
`, id)

	var v domain.Video
	err := row.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.MediaURL, &v.ThumbnailURL,
		&v.Duration, &v.Views, &v.Tags, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("video not found")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepo) GetDetail(ctx context.Context, id, viewerID uuid.UUID) (*domain.VideoDetail, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+videoColumns+`, `+ownerColumns+`,
       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = v.owner_id),
       EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = v.owner_id AND s.subscriber_id = $2)
FROM videos v
JOIN users u ON u.id = v.owner_id
WHERE v.id = $1
`, id, viewerID)

	var d domain.VideoDetail
	err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &d.Description, &d.MediaURL, &d.ThumbnailURL,
		&d.Duration, &d.Views, &d.Tags, &d.IsPublished, &d.CreatedAt, &d.UpdatedAt,
		&d.Owner.ID, &d.Owner.UserName, &d.Owner.FullName, &d.Owner.Avatar,
		&d.SubscriberCount, &d.IsSubscribed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("video not found")
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *VideoRepo) Update(ctx context.Context, v *domain.Video) error {
	_, err := r.pool.Exec(ctx, `
UPDATE videos
SET title = $2, description = $3, thumbnail_url = $4, tags = $5,
    is_published = $6, updated_at = $7
WHERE id = $1
`, v.ID, v.Title, v.Description, v.ThumbnailURL, v.Tags, v.IsPublished, v.UpdatedAt)
	return err
}

func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	return err
}

// IncrementViews bumps the monotonic counter in one atomic statement.
func (r *VideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	return err
}

// List runs the catalog query. The count re-runs the filter stage alone so it
// matches the page under the same snapshot filter.
func (r *VideoRepo) List(ctx context.Context, q catalog.ListQuery) ([]domain.VideoWithOwner, int, error) {
	where := []string{}
	args := []any{}
	argN := 1

	add := func(condFmt string, val any) {
		where = append(where, fmt.Sprintf(condFmt, argN))
		args = append(args, val)
		argN++
	}

	if !q.Mine {
		where = append(where, "v.is_published = TRUE")
	}
	if q.Owner != nil {
		add("v.owner_id = $%d", *q.Owner)
	}
	if q.Tag != "" {
		add("$%d = ANY(v.tags)", q.Tag)
	}
	if q.Query != "" {
		add("v.search_vector @@ plainto_tsquery('simple', $%d)", q.Query)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	countSQL := "SELECT COUNT(*) FROM videos v " + whereSQL
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// left-to-right multi-field sort with a deterministic id tiebreak
	orderParts := make([]string, 0, len(q.Sort)+1)
	for _, k := range q.Sort {
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		orderParts = append(orderParts, "v."+k.Column()+" "+dir)
	}
	orderParts = append(orderParts, "v.id DESC")

	offset := (q.Page - 1) * q.PageSize

	listSQL := `
SELECT ` + videoColumns + `, ` + ownerColumns + `
FROM videos v
JOIN users u ON u.id = v.owner_id
` + whereSQL + `
ORDER BY ` + strings.Join(orderParts, ", ") + `
LIMIT $` + fmt.Sprintf("%d", argN) + ` OFFSET $` + fmt.Sprintf("%d", argN+1)

	args = append(args, q.PageSize, offset)

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.VideoWithOwner{}
	for rows.Next() {
		var v domain.VideoWithOwner
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.MediaURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.Tags, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.UserName, &v.Owner.FullName, &v.Owner.Avatar); err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}
