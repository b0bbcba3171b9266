package impl

import (
	"context"
	"log/slog"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"
	"tienda/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout validates the cart and payment shape, prices the cart against
// live product rows, applies at most one coupon and persists the order.
// The order header, its items, the coupon consumption and the audit entry
// commit in a single transaction.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Item quantity must be greater than zero")
		}
	}
	if input.CardNumber == "" || input.CVV == "" || input.Expiry == "" {
		return nil, domainerrors.ErrInvalidPayment.WithMessage("Payment fields are required")
	}
	if !util.ValidateCardNumber(input.CardNumber) {
		return nil, domainerrors.ErrInvalidPayment.WithMessage("Card number must be 16 digits")
	}
	if !util.ValidateCVV(input.CVV) {
		return nil, domainerrors.ErrInvalidPayment.WithMessage("CVV must be 3 or 4 digits")
	}
	if !util.ValidateExpiry(input.Expiry, time.Now()) {
		return nil, domainerrors.ErrInvalidPayment.WithMessage("Card expiry must be a future MM/YY date")
	}

	var order *entity.Order
	var usedCouponCode string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()
		couponRepo := repoFactory.NewCouponRepository()
		logRepo := repoFactory.NewSecurityLogRepository()

		// Live prices only; client-supplied prices are never trusted.
		distinct := make(map[uuid.UUID]*entity.Product)
		for _, item := range input.Items {
			if _, ok := distinct[item.ProductID]; ok {
				continue
			}
			product, err := productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("checkout failed")
				}

				return errors.Wrap(err, "failed to fetch product for checkout")
			}
			distinct[item.ProductID] = product
		}

		var subtotal int64
		items := make([]*entity.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			product := distinct[item.ProductID]
			lineSubtotal := product.Price * int64(item.Quantity)
			subtotal += lineSubtotal
			items = append(items, &entity.OrderItem{
				ProductID:       product.ID,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
				Subtotal:        lineSubtotal,
			})
		}

		var discount int64
		var couponID *uuid.UUID
		if input.CouponCode != "" {
			// An unresolved, used or expired code falls back to zero
			// discount. Checkout never fails on the coupon.
			coupon, err := couponRepo.FindByCode(ctx, input.CouponCode)
			switch {
			case err == nil && coupon.UserID == input.UserID && coupon.Redeemable(time.Now()):
				if err := couponRepo.Consume(ctx, coupon.ID, time.Now()); err != nil {
					if errors.Is(err, repository.ErrCouponAlreadyUsed) {
						break
					}

					return errors.Wrap(err, "failed to consume coupon")
				}
				discount = subtotal * int64(coupon.DiscountPercentage) / 100
				couponID = &coupon.ID
				usedCouponCode = coupon.Code
			case err != nil && !errors.Is(err, repository.ErrCouponNotFound):
				return errors.Wrap(err, "failed to look up coupon")
			}
		}

		newOrder := &entity.Order{
			UserID:         input.UserID,
			TotalAmount:    subtotal,
			DiscountAmount: discount,
			FinalAmount:    subtotal - discount,
			CouponID:       couponID,
			PaymentMethod:  "card",
			PaymentStatus:  entity.PaymentStatusCompleted,
			Items:          items,
		}
		if err := orderRepo.Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := logRepo.Create(ctx, &entity.SecurityLog{
			UserID:    &input.UserID,
			EventType: entity.EventOrderCreated,
			IPAddress: input.ClientIP,
			Details: map[string]any{
				"order_id":     newOrder.ID.String(),
				"card_number":  util.MaskCardNumber(input.CardNumber),
				"final_amount": newOrder.FinalAmount,
			},
		}); err != nil {
			return errors.WithStack(err)
		}

		order = newOrder

		return nil
	})

	if err != nil {
		srv.logger.Error("Checkout failed", "userID", input.UserID, "error", err)

		return nil, err
	}

	// Best-effort event for downstream consumers; the order already committed.
	event := &service.OrderCreatedEvent{
		RequestID:   input.RequestID,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		FinalAmount: order.FinalAmount,
		ItemCount:   len(order.Items),
		CouponCode:  usedCouponCode,
	}
	if err := srv.publisher.PublishOrderCreated(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order created event", "orderID", order.ID, "error", err)
	}

	srv.logger.Info("Order created", "orderID", order.ID, "userID", order.UserID, "finalAmount", order.FinalAmount)

	return &usecase.CheckoutOutput{Order: order}, nil
}

// ListOrders returns the user's order history with items, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOrderRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return orders, nil
}
