package infrastructure

import (
	"context"
	"strings"

	"restaurantBackoffice/internal/modules/users/domain"
	"restaurantBackoffice/internal/platform/docstore"
)

type Repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) *Repository {
	return &Repository{store: store}
}

// FindByEmail looks a user up by exact email. ok is false when no user matches.
func (r *Repository) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	email = strings.TrimSpace(email)
	user, ok := docstore.Users.FindBy(doc, func(u domain.User) bool { return u.Email == email })
	return user, ok, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return docstore.Users.Get(ctx, r.store, id)
}
