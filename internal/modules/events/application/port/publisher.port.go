package port

import (
	"context"

	"restaurantBackoffice/internal/modules/events/domain"
)

// Publisher delivers change events to an external broker.
type Publisher interface {
	Publish(ctx context.Context, msg *domain.Message) error
	Close() error
}
