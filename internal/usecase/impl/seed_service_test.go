package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSeedService(t *testing.T) (usecase.SeedUsecase, *serviceFixtures) {
	t.Helper()

	fixtures := newServiceFixtures(t)
	svc := NewSeedService(fixtures.txManager, fixtures.hasher, fixtures.cfg, testLogger())

	return svc, fixtures
}

func TestSeedService_Seed_FreshStore(t *testing.T) {
	svc, fixtures := createTestSeedService(t)

	result, err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.True(t, result.AdminCreated)
	assert.True(t, result.CustomerCreated)
	assert.Equal(t, 6, result.ProductsCreated)

	var admin, customer *entity.User
	err = fixtures.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		var err error
		if admin, err = userRepo.FindByEmail(context.Background(), "admin@arepabuelas.com"); err != nil {
			return err
		}
		customer, err = userRepo.FindByEmail(context.Background(), "cliente@arepabuelas.com")

		return err
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, entity.StatusActive, admin.Status)

	assert.Equal(t, entity.RoleCustomer, customer.Role)
	assert.Equal(t, entity.StatusActive, customer.Status)
	require.NotNil(t, customer.ApprovedBy)
	assert.Equal(t, admin.ID, *customer.ApprovedBy)

	// Passwords are stored hashed, ready for login.
	assert.True(t, fixtures.hasher.Check("admin123", admin.PasswordHash))
	assert.True(t, fixtures.hasher.Check("prueba123", customer.PasswordHash))

	// The demo customer gets a welcome coupon.
	coupons := listCouponViews(t, fixtures, customer.ID)
	require.Len(t, coupons, 1)
	assert.Equal(t, "WELCOME-DEMO123", coupons[0].Code)
}

func TestSeedService_Seed_Idempotent(t *testing.T) {
	svc, fixtures := createTestSeedService(t)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	result, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.False(t, result.AdminCreated)
	assert.False(t, result.CustomerCreated)
	assert.Equal(t, 0, result.ProductsCreated)

	// Still exactly one coupon and six products.
	var customer *entity.User
	var productCount int
	err = fixtures.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		var err error
		if customer, err = repoFactory.NewUserRepository().FindByEmail(context.Background(), "cliente@arepabuelas.com"); err != nil {
			return err
		}
		products, err := repoFactory.NewProductRepository().List(context.Background())
		productCount = len(products)

		return err
	})
	require.NoError(t, err)

	assert.Len(t, listCouponViews(t, fixtures, customer.ID), 1)
	assert.Equal(t, 6, productCount)
}
