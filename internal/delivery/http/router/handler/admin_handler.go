package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for account moderation handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// ListUsers returns every account, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ApproveUser activates a pending or blocked account.
func (h *AdminHandler) ApproveUser(c echo.Context) error {
	input, err := h.moderateInput(c)
	if err != nil {
		return err
	}

	user, err := h.uc.ApproveUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User approved successfully")
}

// BlockUser blocks an account.
func (h *AdminHandler) BlockUser(c echo.Context) error {
	input, err := h.moderateInput(c)
	if err != nil {
		return err
	}

	user, err := h.uc.BlockUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User blocked successfully")
}

// ListSecurityLogs returns recent audit entries, newest first.
// An optional ?limit= query caps the page size.
func (h *AdminHandler) ListSecurityLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return domainerrors.ErrValidationFailed.WithMessage("Invalid limit")
		}
		limit = parsed
	}

	logs, err := h.uc.ListSecurityLogs(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

func (h *AdminHandler) moderateInput(c echo.Context) (*usecase.ModerateUserInput, error) {
	adminID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid user ID")
	}

	return &usecase.ModerateUserInput{
		TargetID: targetID,
		AdminID:  adminID,
		ClientIP: c.RealIP(),
	}, nil
}
