package usecase

import (
	"context"
	"log/slog"
	"time"

	"restaurantBackoffice/internal/modules/events/application/port"
	"restaurantBackoffice/internal/modules/events/domain"
)

// PublishUseCase announces entity changes. Delivery failures are logged and
// never reported to the caller.
type PublishUseCase struct {
	publisher port.Publisher
	now       func() time.Time
}

func NewPublishUseCase(p port.Publisher) *PublishUseCase {
	return &PublishUseCase{publisher: p, now: time.Now}
}

func (uc *PublishUseCase) Created(ctx context.Context, entity, id string, data any) {
	uc.emit(ctx, entity, domain.ActionCreated, id, data)
}

func (uc *PublishUseCase) Updated(ctx context.Context, entity, id string, data any) {
	uc.emit(ctx, entity, domain.ActionUpdated, id, data)
}

func (uc *PublishUseCase) Deleted(ctx context.Context, entity, id string) {
	uc.emit(ctx, entity, domain.ActionDeleted, id, nil)
}

func (uc *PublishUseCase) emit(ctx context.Context, entity, action, id string, data any) {
	if uc == nil {
		return
	}
	uc.Execute(ctx, domain.NewMessage(entity, action, id, data, uc.now()))
}

func (uc *PublishUseCase) Execute(ctx context.Context, msg *domain.Message) {
	if uc == nil || uc.publisher == nil || msg == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("event publish failed",
			slog.String("topic", msg.Topic),
			slog.String("resourceId", msg.ResourceID),
			slog.Any("error", err),
		)
		return
	}
	slog.Debug("event published", slog.String("topic", msg.Topic), slog.String("resourceId", msg.ResourceID))
}
