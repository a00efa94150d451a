package port

import (
	"context"

	users "restaurantBackoffice/internal/modules/users/domain"
	"restaurantBackoffice/internal/shared/auth"
)

// UserFinder resolves accounts by login email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (users.User, bool, error)
}

// TokenIssuer signs and checks access tokens.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
	Validate(token string) (*auth.Claims, error)
}
