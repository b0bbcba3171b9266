package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order history handlers.
type OrderHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type checkoutItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	Items      []checkoutItemRequest `json:"items"`
	CouponCode string                `json:"couponCode"`
	CardNumber string                `json:"cardNumber"`
	CVV        string                `json:"cvv"`
	Expiry     string                `json:"expiry"`
}

// Create runs the checkout flow for the current user's cart.
func (h *OrderHandler) Create(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	items := make([]usecase.CartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("Invalid product ID in cart")
		}
		items = append(items, usecase.CartItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	output, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		UserID:     userID,
		Items:      items,
		CouponCode: req.CouponCode,
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		Expiry:     req.Expiry,
		ClientIP:   c.RealIP(),
		RequestID:  deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Order, "Order created successfully")
}

// List returns the current user's order history, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
