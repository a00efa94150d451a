package infrastructure

import (
	"context"

	"restaurantBackoffice/internal/modules/menu/domain"
	"restaurantBackoffice/internal/platform/docstore"
)

// Repository stores menu items in the shared document.
type Repository struct {
	store docstore.Store
	newID func() string
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store, newID: docstore.NewID}
}

func (r *Repository) List(ctx context.Context) ([]domain.MenuItem, error) {
	return docstore.Menu.List(ctx, r.store)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.MenuItem, error) {
	return docstore.Menu.Get(ctx, r.store, id)
}

func (r *Repository) Create(ctx context.Context, in domain.CreateMenuItemInput) (domain.MenuItem, error) {
	item, err := in.Build(r.newID())
	if err != nil {
		return domain.MenuItem{}, err
	}
	return docstore.Menu.Insert(ctx, r.store, item)
}

func (r *Repository) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (domain.MenuItem, error) {
	return docstore.Menu.Modify(ctx, r.store, id, patch.Apply)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := docstore.Menu.Delete(ctx, r.store, id)
	return err
}
