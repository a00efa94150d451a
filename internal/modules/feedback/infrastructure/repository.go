package infrastructure

import (
	"context"
	"time"

	"restaurantBackoffice/internal/modules/feedback/domain"
	"restaurantBackoffice/internal/platform/docstore"
)

// Repository stores guest feedback.
type Repository struct {
	store docstore.Store
	newID func() string
	now   func() time.Time
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store, newID: docstore.NewID, now: time.Now}
}

func (r *Repository) List(ctx context.Context) ([]domain.Entry, error) {
	return docstore.Feedback.List(ctx, r.store)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	return docstore.Feedback.Get(ctx, r.store, id)
}

func (r *Repository) Create(ctx context.Context, in domain.CreateEntryInput) (domain.Entry, error) {
	entry := in.Build(r.newID(), docstore.Timestamp(r.now()))
	return docstore.Feedback.Insert(ctx, r.store, entry)
}

func (r *Repository) Update(ctx context.Context, id string, patch domain.EntryPatch) (domain.Entry, error) {
	return docstore.Feedback.Modify(ctx, r.store, id, func(e domain.Entry) (domain.Entry, error) {
		return patch.Apply(e), nil
	})
}
