// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"
	"tienda/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sanitizer    service.Sanitizer
	authCfg      *config.AuthConfig
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	sanitizer service.Sanitizer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		sanitizer:    sanitizer,
		authCfg:      cfg.Auth,
		logger:       logger,
	}
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(srv.sanitizer.Sanitize(input.Email)))
	fullName := strings.TrimSpace(srv.sanitizer.Sanitize(input.FullName))
	photoURL := strings.TrimSpace(srv.sanitizer.Sanitize(input.PhotoURL))

	srv.logger.Info("Starting user registration", "email", email)

	if email == "" || input.Password == "" || fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email, password and full name are required")
	}
	if !util.ValidateEmail(email) {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid email format")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	couponCode, err := util.GenerateCouponCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate welcome coupon code")
	}

	var registeredUser *entity.User
	var welcomeCoupon *entity.Coupon

	// The user row, the welcome coupon and the audit entry commit together.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		couponRepo := repoFactory.NewCouponRepository()
		logRepo := repoFactory.NewSecurityLogRepository()

		// Fast-path duplicate check; the unique constraint on email is the
		// actual guard against concurrent registrations.
		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailRegistered.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		newUser := &entity.User{
			Email:        email,
			PasswordHash: hashedPassword,
			FullName:     fullName,
			PhotoURL:     photoURL,
			Role:         entity.RoleCustomer,
			Status:       entity.StatusPending,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailRegistered.WrapMessage("user registration failed")
			}

			return errors.WithStack(err)
		}

		coupon := &entity.Coupon{
			Code:               couponCode,
			DiscountPercentage: srv.authCfg.WelcomeDiscount,
			UserID:             newUser.ID,
			ExpiresAt:          time.Now().AddDate(0, 0, srv.authCfg.WelcomeCouponDays),
		}
		if err := couponRepo.Create(ctx, coupon); err != nil {
			return errors.WithStack(err)
		}

		if err := logRepo.Create(ctx, &entity.SecurityLog{
			UserID:    &newUser.ID,
			EventType: entity.EventUserRegistration,
			IPAddress: input.ClientIP,
			Details:   map[string]any{"email": email},
		}); err != nil {
			return errors.WithStack(err)
		}

		registeredUser = newUser
		welcomeCoupon = coupon

		return nil
	})

	if err != nil {
		srv.logger.Warn("User registration failed", "email", email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{
		User:   registeredUser.PublicView(),
		Coupon: welcomeCoupon,
	}, nil
}

// Login orchestrates the login process, including the brute-force lockout.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.logger.Debug("Starting user login", "email", email)

	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email and password are required")
	}
	if !util.ValidateEmail(email) {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid email format")
	}

	var loggedInUser *entity.User
	var token string
	// A rejected attempt still has to commit its counter update and audit
	// entry, so the transaction returns nil and the rejection is carried out.
	var loginErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		logRepo := repoFactory.NewSecurityLogRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				if logErr := logRepo.Create(ctx, &entity.SecurityLog{
					EventType: entity.EventFailedLoginAttempt,
					IPAddress: input.ClientIP,
					Details:   map[string]any{"email": email, "reason": "user_not_found"},
				}); logErr != nil {
					return errors.WithStack(logErr)
				}
				loginErr = domainerrors.ErrInvalidCredentials

				return nil
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		switch user.Status {
		case entity.StatusBlocked:
			loginErr = domainerrors.ErrAccountBlocked

			return nil
		case entity.StatusPending:
			loginErr = domainerrors.ErrAccountPending

			return nil
		}

		now := time.Now()

		if user.FailedLoginAttempts >= srv.authCfg.MaxFailedLogins && user.LastFailedLogin != nil {
			if now.Sub(*user.LastFailedLogin) < srv.authCfg.LockoutWindow {
				loginErr = domainerrors.ErrAccountLocked

				return nil
			}
			// Lockout window elapsed; start counting fresh.
			user.FailedLoginAttempts = 0
			user.LastFailedLogin = nil
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			user.FailedLoginAttempts++
			user.LastFailedLogin = &now
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.WithStack(err)
			}
			if err := logRepo.Create(ctx, &entity.SecurityLog{
				UserID:    &user.ID,
				EventType: entity.EventFailedLoginAttempt,
				IPAddress: input.ClientIP,
				Details: map[string]any{
					"email":    email,
					"reason":   "wrong_password",
					"attempts": user.FailedLoginAttempts,
				},
			}); err != nil {
				return errors.WithStack(err)
			}
			loginErr = domainerrors.ErrInvalidCredentials

			return nil
		}

		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.WithStack(err)
		}

		token, err = srv.tokenService.Generate(user.ID, user.Email, user.Role)
		if err != nil {
			return errors.Wrap(err, "failed to generate session token")
		}

		if err := logRepo.Create(ctx, &entity.SecurityLog{
			UserID:    &user.ID,
			EventType: entity.EventSuccessfulLogin,
			IPAddress: input.ClientIP,
			Details:   map[string]any{"email": email},
		}); err != nil {
			return errors.WithStack(err)
		}

		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute login transaction", "email", email, "error", err)

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	if loginErr != nil {
		srv.logger.Warn("Login rejected", "email", email, "error", loginErr.Error())

		return nil, loginErr
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		Token: token,
		User:  loggedInUser.PublicView(),
	}, nil
}

// CurrentUser resolves the live account for a verified token subject.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user.PublicView(), nil
}
