package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurantBackoffice/internal/shared/auth"
)

const claimsContextKey = "claims"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c echo.Context) error {
	var req loginRequest
	if err := decodeJSON(c, &req); err != nil {
		return h.respondError(c, err)
	}
	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RequireAuth rejects requests without a valid bearer token: 401 when the
// header is missing, 403 when the token does not verify.
func (h *Handler) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.ExtractBearerToken(c.Request())
			claims, err := h.auth.Verify(token)
			if err != nil {
				return h.respondError(c, err)
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

type identityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// me echoes the identity carried by the caller's token.
func (h *Handler) me(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return h.respondError(c, auth.ErrMissingToken)
	}
	return c.JSON(http.StatusOK, identityResponse{ID: claims.UserID, Email: claims.Email, Role: claims.Role})
}

// claimsFrom returns the identity stored by RequireAuth, if any.
func claimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	return claims, ok
}
