package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon read handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{uc: uc, logger: logger}
}

// ListActive returns the current user's redeemable coupons.
func (h *CouponHandler) ListActive(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	coupons, err := h.uc.ListActiveCoupons(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "")
}

// ListStatuses returns every coupon for a user with derived statuses.
// A customer may only inspect their own coupons; admins may inspect anyone's.
func (h *CouponHandler) ListStatuses(c echo.Context) error {
	currentID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid user ID")
	}

	role, _ := c.Get(middleware.ContextKeyRole).(entity.Role)
	if targetID != currentID && role != entity.RoleAdmin {
		return domainerrors.ErrForbidden
	}

	views, err := h.uc.ListCouponStatuses(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// QR renders a coupon's code as a PNG QR image.
func (h *CouponHandler) QR(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	png, err := h.uc.CouponQR(c.Request().Context(), userID, c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
