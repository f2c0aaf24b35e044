package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

type SortKey struct {
	Field string
	Desc  bool
}

var sortableFields = map[string]string{
	"views":     "views",
	"createdAt": "created_at",
	"duration":  "duration",
	"title":     "title",
}

// Column returns the store column for the API field name.
func (k SortKey) Column() string { return sortableFields[k.Field] }

type ListQuery struct {
	Query   string
	OwnerID string // raw id filter; malformed ids are a client error, not an empty result
	Tag     string

	// Mine lists the actor's own videos regardless of publish state.
	Mine    bool
	ActorID uuid.UUID

	Page     int
	PageSize int

	SortBy   []string
	SortType []string

	// derived by Normalize
	Owner *uuid.UUID
	Sort  []SortKey
}

func (q *ListQuery) Normalize() error {
	q.Query = strings.TrimSpace(q.Query)
	q.Tag = strings.ToLower(strings.TrimSpace(q.Tag))
	q.OwnerID = strings.TrimSpace(q.OwnerID)

	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 10
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}

	if q.OwnerID != "" {
		id, err := uuid.Parse(q.OwnerID)
		if err != nil {
			return domain.ErrValidationMeta("invalid query param", map[string]string{
				"userId": "must be uuid",
			})
		}
		q.Owner = &id
	}
	if q.Mine {
		if q.ActorID == uuid.Nil {
			return domain.ErrForbidden("not allowed")
		}
		q.Owner = &q.ActorID
	}

	if len(q.SortBy) == 0 {
		q.SortBy = []string{"views", "createdAt"}
		q.SortType = []string{"desc", "desc"}
	}
	q.Sort = q.Sort[:0]
	for i, f := range q.SortBy {
		f = strings.TrimSpace(f)
		if _, ok := sortableFields[f]; !ok {
			return domain.ErrValidationMeta("invalid query param", map[string]string{
				"sortBy": "must be one of: views, createdAt, duration, title",
			})
		}
		dir := "desc"
		if i < len(q.SortType) {
			dir = strings.ToLower(strings.TrimSpace(q.SortType[i]))
		}
		switch dir {
		case "asc", "desc":
		default:
			return domain.ErrValidationMeta("invalid query param", map[string]string{
				"sortType": "must be asc or desc",
			})
		}
		q.Sort = append(q.Sort, SortKey{Field: f, Desc: dir == "desc"})
	}
	return nil
}

type ListResult struct {
	Items       []domain.VideoWithOwner
	TotalVideos int
	Page        int
	PageSize    int
}

// List runs the filtered, sorted, paginated catalog query. The total is
// computed from the same filter; a page past the end comes back empty with
// the correct total.
func (s *Service) List(ctx context.Context, q ListQuery) (ListResult, error) {
	if err := q.Normalize(); err != nil {
		return ListResult{}, err
	}
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Items:       items,
		TotalVideos: total,
		Page:        q.Page,
		PageSize:    q.PageSize,
	}, nil
}

// ListMine is the owner-scoped mode: filters by the actor and does not force
// is_published.
func (s *Service) ListMine(ctx context.Context, actorID uuid.UUID, q ListQuery) (ListResult, error) {
	q.Mine = true
	q.ActorID = actorID
	q.OwnerID = ""
	if len(q.SortBy) == 0 {
		q.SortBy = []string{"createdAt"}
		q.SortType = []string{"desc"}
	}
	return s.List(ctx, q)
}
