package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo.Context key the resolved caller is stored under.
const identityKey = "identity"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the resolved
// caller identity on the context for handlers to pass into usecases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(identityKey, usecase.Identity{
			AccountID:   claims.UserID,
			ProfileType: claims.ProfileType,
		})

		return next(c)
	}
}

// CallerIdentity extracts the authenticated caller set by Authenticate.
// The second return is false on routes that skipped authentication.
func CallerIdentity(c echo.Context) (usecase.Identity, bool) {
	identity, ok := c.Get(identityKey).(usecase.Identity)

	return identity, ok
}
