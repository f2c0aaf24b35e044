package media

import (
	"context"

	"github.com/vidstream/vidstream/internal/application/catalog"
	"github.com/vidstream/vidstream/internal/domain"
)

// Disabled stands in when no object store is configured. Reads keep working;
// publish and thumbnail replacement report an upstream failure.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, localPath string, kind catalog.MediaKind) (*catalog.MediaAsset, error) {
	return nil, domain.ErrUpstream("media store is not configured")
}

func (Disabled) Remove(ctx context.Context, url string, kind catalog.MediaKind) error {
	return nil
}
