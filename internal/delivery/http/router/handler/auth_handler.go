// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tienda/config"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	authCfg  *config.AuthConfig
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		authCfg:  cfg.Auth,
		logger:   logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoUrl"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		PhotoURL: req.PhotoURL,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user":   output.User,
		"coupon": output.Coupon,
	}, "User registered successfully")
}

// Login handles the login request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieAuthToken,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.TokenTTL() / time.Second),
		HttpOnly: true,
		Secure:   h.authCfg.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	return response.Success(c, http.StatusOK, output.User, "Login successful")
}

// Me resolves the current session to its live account. Unlike routes behind
// the auth middleware, this endpoint distinguishes a stale token (404) from
// an inactive account (403).
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(middleware.CookieAuthToken)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthenticated
	}

	claims, err := h.tokenSvc.Validate(cookie.Value)
	if err != nil {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	switch user.Status {
	case entity.StatusBlocked:
		return domainerrors.ErrAccountBlocked
	case entity.StatusPending:
		return domainerrors.ErrAccountPending
	}

	return response.Success(c, http.StatusOK, user, "")
}
