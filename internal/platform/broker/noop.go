package broker

import (
	"context"

	"restaurantBackoffice/internal/modules/events/application/port"
	"restaurantBackoffice/internal/modules/events/domain"
)

// NoopPublisher drops every event. It is used when EVENTS_DRIVER=none.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *domain.Message) error { return nil }

func (NoopPublisher) Close() error { return nil }

var _ port.Publisher = NoopPublisher{}
