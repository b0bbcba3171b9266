package middleware

import (
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CookieAuthToken is the name of the session cookie set at login.
const CookieAuthToken = "auth_token"

// Context keys populated by Authenticate.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for session authentication and authorization.
// Every privileged request re-checks the live account status, so accounts
// blocked after token issuance lose access immediately.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the session cookie and resolves the live account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(CookieAuthToken)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		// The token carries no status, so the live row decides.
		user, err := m.authUC.CurrentUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}
		if user.Status != entity.StatusActive {
			return domainerrors.ErrForbidden
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyEmail, user.Email)
		c.Set(ContextKeyRole, user.Role)

		return next(c)
	}
}

// RequireAdmin ensures the authenticated account has the admin role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(ContextKeyRole).(entity.Role)
		if !ok || role != entity.RoleAdmin {
			return domainerrors.ErrAdminRequired
		}

		return next(c)
	}
}
