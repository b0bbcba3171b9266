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

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.CouponUsecase {
	return &couponService{
		txManager: txManager,
		qrService: qrService,
		logger:    logger,
	}
}

// ListActiveCoupons returns the user's unused, unexpired coupons.
func (srv *couponService) ListActiveCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error) {
	coupons, err := srv.listByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := make([]*entity.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		if coupon.Redeemable(now) {
			active = append(active, coupon)
		}
	}

	return active, nil
}

// ListCouponStatuses returns all coupons with derived display statuses.
func (srv *couponService) ListCouponStatuses(ctx context.Context, userID uuid.UUID) ([]*usecase.CouponView, error) {
	coupons, err := srv.listByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*usecase.CouponView, 0, len(coupons))
	for _, coupon := range coupons {
		views = append(views, &usecase.CouponView{
			Coupon: coupon,
			Status: coupon.StatusAt(now),
		})
	}

	return views, nil
}

// CouponQR renders a coupon owned by the user as a PNG QR code.
func (srv *couponService) CouponQR(ctx context.Context, userID uuid.UUID, code string) ([]byte, error) {
	var coupon *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCouponRepository().FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return domainerrors.ErrCouponNotFound.WrapMessage("coupon lookup failed")
			}

			return errors.Wrap(err, "failed to find coupon")
		}
		coupon = found

		return nil
	})

	if err != nil {
		return nil, err
	}
	// Coupons are only renderable by their owner.
	if coupon.UserID != userID {
		return nil, domainerrors.ErrCouponNotFound.WrapMessage("coupon lookup failed")
	}

	png, err := srv.qrService.GenerateCouponQR(coupon.Code)
	if err != nil {
		srv.logger.Error("Failed to generate coupon QR", "code", code, "error", err)

		return nil, errors.Wrap(err, "failed to generate coupon QR")
	}

	return png, nil
}

func (srv *couponService) listByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error) {
	var coupons []*entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCouponRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list coupons")
		}
		coupons = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return coupons, nil
}
