package infrastructure

import (
	"context"

	"restaurantBackoffice/internal/modules/staff/domain"
	"restaurantBackoffice/internal/platform/docstore"
)

type Repository struct {
	store docstore.Store
	newID func() string
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store, newID: docstore.NewID}
}

func (r *Repository) List(ctx context.Context) ([]domain.Member, error) {
	return docstore.Staff.List(ctx, r.store)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Member, error) {
	return docstore.Staff.Get(ctx, r.store, id)
}

func (r *Repository) Create(ctx context.Context, in domain.CreateMemberInput) (domain.Member, error) {
	return docstore.Staff.Insert(ctx, r.store, in.Build(r.newID()))
}

func (r *Repository) Update(ctx context.Context, id string, patch domain.MemberPatch) (domain.Member, error) {
	return docstore.Staff.Modify(ctx, r.store, id, func(m domain.Member) (domain.Member, error) {
		return patch.Apply(m), nil
	})
}
