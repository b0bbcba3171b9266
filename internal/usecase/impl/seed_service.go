package impl

import (
	"context"
	"log/slog"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
)

const (
	seedAdminEmail       = "admin@arepabuelas.com"
	seedAdminPassword    = "admin123"
	seedCustomerEmail    = "cliente@arepabuelas.com"
	seedCustomerPassword = "prueba123"
	seedCouponCode       = "WELCOME-DEMO123"
)

// seedProduct is a fixture row for the demo catalog.
type seedProduct struct {
	name        string
	description string
	price       int64
	imageURL    string
	stock       int
}

var seedProducts = []seedProduct{
	{
		name:        "Arepa de Queso",
		description: "Classic grilled arepa filled with melted white cheese.",
		price:       350,
		imageURL:    "https://images.pexels.com/photos/5946431/pexels-photo-5946431.jpeg",
		stock:       50,
	},
	{
		name:        "Arepa Reina Pepiada",
		description: "Arepa stuffed with shredded chicken, avocado and mayo.",
		price:       550,
		imageURL:    "https://images.pexels.com/photos/5946640/pexels-photo-5946640.jpeg",
		stock:       40,
	},
	{
		name:        "Arepa de Carne Mechada",
		description: "Slow-cooked shredded beef in a crispy corn arepa.",
		price:       600,
		imageURL:    "https://images.pexels.com/photos/6605207/pexels-photo-6605207.jpeg",
		stock:       35,
	},
	{
		name:        "Arepa Domino",
		description: "Black beans and crumbled white cheese, a timeless pairing.",
		price:       450,
		imageURL:    "https://images.pexels.com/photos/6605208/pexels-photo-6605208.jpeg",
		stock:       45,
	},
	{
		name:        "Arepa Pelua",
		description: "Shredded beef topped with grated yellow cheese.",
		price:       620,
		imageURL:    "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg",
		stock:       30,
	},
	{
		name:        "Arepa Dulce de Anis",
		description: "Sweet anise arepa, golden and lightly crisped.",
		price:       300,
		imageURL:    "https://images.pexels.com/photos/7625318/pexels-photo-7625318.jpeg",
		stock:       25,
	},
}

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	authCfg   *config.AuthConfig
	logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		hasher:    hasher,
		authCfg:   cfg.Auth,
		logger:    logger,
	}
}

// Seed loads the demo admin, demo customer and fixture catalog.
// Existing rows are left untouched, so repeated calls are safe.
func (srv *seedService) Seed(ctx context.Context) (*usecase.SeedResult, error) {
	result := &usecase.SeedResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()
		couponRepo := repoFactory.NewCouponRepository()

		admin, err := srv.ensureUser(ctx, userRepo, seedAdminEmail, seedAdminPassword, "Abuela Carmen", entity.RoleAdmin)
		if err != nil {
			return err
		}
		result.AdminCreated = admin != nil
		if admin == nil {
			if admin, err = userRepo.FindByEmail(ctx, seedAdminEmail); err != nil {
				return errors.Wrap(err, "failed to load seeded admin")
			}
		}

		customer, err := srv.ensureUser(ctx, userRepo, seedCustomerEmail, seedCustomerPassword, "Cliente de Prueba", entity.RoleCustomer)
		if err != nil {
			return err
		}
		result.CustomerCreated = customer != nil
		if customer != nil {
			now := time.Now()
			customer.Status = entity.StatusActive
			customer.ApprovedBy = &admin.ID
			customer.ApprovedAt = &now
			if err := userRepo.Update(ctx, customer); err != nil {
				return errors.Wrap(err, "failed to activate seeded customer")
			}

			coupon := &entity.Coupon{
				Code:               seedCouponCode,
				DiscountPercentage: srv.authCfg.WelcomeDiscount,
				UserID:             customer.ID,
				ExpiresAt:          time.Now().AddDate(0, 0, srv.authCfg.WelcomeCouponDays),
			}
			if err := couponRepo.Create(ctx, coupon); err != nil {
				return errors.Wrap(err, "failed to create seeded coupon")
			}
		}

		existing, err := productRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		if len(existing) == 0 {
			for _, fixture := range seedProducts {
				product := &entity.Product{
					Name:        fixture.name,
					Description: fixture.description,
					Price:       fixture.price,
					ImageURL:    fixture.imageURL,
					Stock:       fixture.stock,
					CreatedBy:   admin.ID,
				}
				if err := productRepo.Create(ctx, product); err != nil {
					return errors.Wrap(err, "failed to create seeded product")
				}
				result.ProductsCreated++
			}
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Seeding failed", "error", err)

		return nil, err
	}
	srv.logger.Info("Seeding finished",
		"adminCreated", result.AdminCreated,
		"customerCreated", result.CustomerCreated,
		"productsCreated", result.ProductsCreated,
	)

	return result, nil
}

// ensureUser creates an active account when the email is free.
// Returns nil without error when the account already exists.
func (srv *seedService) ensureUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	email, password, fullName string,
	role entity.Role,
) (*entity.User, error) {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check seeded account")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash seeded password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		Status:       entity.StatusActive,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create seeded account")
	}

	return user, nil
}
