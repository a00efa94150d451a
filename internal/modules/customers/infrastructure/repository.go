package infrastructure

import (
	"context"
	"time"

	"restaurantBackoffice/internal/modules/customers/domain"
	"restaurantBackoffice/internal/platform/docstore"
)

type Repository struct {
	store docstore.Store
	newID func() string
	now   func() time.Time
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store, newID: docstore.NewID, now: time.Now}
}

func (r *Repository) List(ctx context.Context) ([]domain.Customer, error) {
	return docstore.Customers.List(ctx, r.store)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	return docstore.Customers.Get(ctx, r.store, id)
}

// Create stamps createdAt with the current time.
func (r *Repository) Create(ctx context.Context, in domain.CreateCustomerInput) (domain.Customer, error) {
	customer := in.Build(r.newID(), docstore.Timestamp(r.now()))
	return docstore.Customers.Insert(ctx, r.store, customer)
}

func (r *Repository) Update(ctx context.Context, id string, patch domain.CustomerPatch) (domain.Customer, error) {
	return docstore.Customers.Modify(ctx, r.store, id, func(c domain.Customer) (domain.Customer, error) {
		return patch.Apply(c), nil
	})
}
