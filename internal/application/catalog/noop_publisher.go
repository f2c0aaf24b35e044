package catalog

import "context"

// NoopPublisher stands in when no broker is configured (dev).
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return nil
}
