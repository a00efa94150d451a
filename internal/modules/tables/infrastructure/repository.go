package infrastructure

import (
	"context"

	"restaurantBackoffice/internal/modules/tables/domain"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/shared/apperr"
)

// Repository stores tables in the shared document.
type Repository struct {
	store docstore.Store
	newID func() string
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store, newID: docstore.NewID}
}

func (r *Repository) List(ctx context.Context) ([]domain.Table, error) {
	return docstore.Tables.List(ctx, r.store)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Table, error) {
	return docstore.Tables.Get(ctx, r.store, id)
}

// Create rejects a number already used by another table.
func (r *Repository) Create(ctx context.Context, in domain.CreateTableInput) (domain.Table, error) {
	table, err := in.Build(r.newID())
	if err != nil {
		return domain.Table{}, err
	}
	err = docstore.Update(ctx, r.store, func(doc *docstore.Document) error {
		if err := checkNumberFree(doc, table); err != nil {
			return err
		}
		docstore.Tables.Append(doc, table)
		return nil
	})
	if err != nil {
		return domain.Table{}, err
	}
	return table, nil
}

// Update applies patch; a new number must not collide with another table.
func (r *Repository) Update(ctx context.Context, id string, patch domain.TablePatch) (domain.Table, error) {
	var updated domain.Table
	err := docstore.Update(ctx, r.store, func(doc *docstore.Document) error {
		current, idx, err := docstore.Tables.Find(doc, id)
		if err != nil {
			return err
		}
		next, err := patch.Apply(current)
		if err != nil {
			return err
		}
		if err := checkNumberFree(doc, next); err != nil {
			return err
		}
		docstore.Tables.Replace(doc, idx, next)
		updated = next
		return nil
	})
	if err != nil {
		return domain.Table{}, err
	}
	return updated, nil
}

func checkNumberFree(doc *docstore.Document, t domain.Table) error {
	_, taken := docstore.Tables.FindBy(doc, func(other domain.Table) bool {
		return other.Number == t.Number && other.ID != t.ID
	})
	if taken {
		return apperr.Invalid("table number %d is already in use", t.Number)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := docstore.Tables.Delete(ctx, r.store, id)
	return err
}
