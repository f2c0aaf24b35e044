package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidstream/vidstream/internal/domain"
)

type PlaylistRepo struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepo(pool *pgxpool.Pool) *PlaylistRepo {
	return &PlaylistRepo{pool: pool}
}

func (r *PlaylistRepo) Insert(ctx context.Context, p *domain.Playlist) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO playlists (id, owner_id, name, description, video_ids, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, p.ID, p.OwnerID, p.Name, p.Description, p.VideoIDs, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PlaylistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, name, description, video_ids, created_at, updated_at
FROM playlists WHERE id = $1
`, id)

	var p domain.Playlist
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.VideoIDs, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByOwner derives the thumbnail from the first member video; NULL when
// the playlist is empty or that video is gone.
func (r *PlaylistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PlaylistSummary, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.id, p.name, p.description,
       COALESCE(array_length(p.video_ids, 1), 0),
       (SELECT v.thumbnail_url FROM videos v WHERE v.id = p.video_ids[1]),
       p.created_at
FROM playlists p
WHERE p.owner_id = $1
ORDER BY p.created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PlaylistSummary{}
	for rows.Next() {
		var s domain.PlaylistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.VideoCount, &s.Thumbnail, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PlaylistRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.PlaylistDetail, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &domain.PlaylistDetail{Playlist: *p, Videos: []domain.VideoWithOwner{}}

	row := r.pool.QueryRow(ctx, `
SELECT `+ownerColumns+` FROM users u WHERE u.id = $1
`, p.OwnerID)
	if err := row.Scan(&d.Owner.ID, &d.Owner.UserName, &d.Owner.FullName, &d.Owner.Avatar); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if len(p.VideoIDs) == 0 {
		return d, nil
	}

	// unnest WITH ORDINALITY keeps the playlist's member order
	rows, err := r.pool.Query(ctx, `
SELECT `+videoColumns+`, `+ownerColumns+`
FROM unnest($1::uuid[]) WITH ORDINALITY AS m(video_id, ord)
JOIN videos v ON v.id = m.video_id
JOIN users u ON u.id = v.owner_id
ORDER BY m.ord
`, p.VideoIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.VideoWithOwner
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.MediaURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.Tags, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.UserName, &v.Owner.FullName, &v.Owner.Avatar); err != nil {
			return nil, err
		}
		d.Videos = append(d.Videos, v)
	}
	return d, rows.Err()
}

func (r *PlaylistRepo) Rename(ctx context.Context, id uuid.UUID, name, description string, now time.Time) (*domain.Playlist, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE playlists SET name = $2, description = $3, updated_at = $4 WHERE id = $1
`, id, name, description, now)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound("playlist not found")
	}
	return r.GetByID(ctx, id)
}

func (r *PlaylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	return err
}

// AddVideo filters on membership inside the update, so duplicate adds report
// false from the store rather than appending twice.
func (r *PlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID, now time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE playlists
SET video_ids = array_append(video_ids, $2), updated_at = $3
WHERE id = $1 AND NOT ($2 = ANY(video_ids))
`, playlistID, videoID, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID, now time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE playlists
SET video_ids = array_remove(video_ids, $2), updated_at = $3
WHERE id = $1
`, playlistID, videoID, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
