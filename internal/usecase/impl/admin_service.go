package impl

import (
	"context"
	"log/slog"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
)

const defaultSecurityLogLimit = 100

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListUsers returns all accounts, newest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.PublicUser, error) {
	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	public := make([]*entity.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.PublicView())
	}

	return public, nil
}

// ApproveUser activates an account and stamps approval metadata.
func (srv *adminService) ApproveUser(ctx context.Context, input *usecase.ModerateUserInput) (*entity.PublicUser, error) {
	user, err := srv.moderate(ctx, input, func(user *entity.User) entity.SecurityEventType {
		now := time.Now()
		user.Status = entity.StatusActive
		user.ApprovedBy = &input.AdminID
		user.ApprovedAt = &now

		return entity.EventUserApproved
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Info("User approved", "userID", input.TargetID, "adminID", input.AdminID)

	return user, nil
}

// BlockUser blocks an account. Target role is deliberately not checked.
func (srv *adminService) BlockUser(ctx context.Context, input *usecase.ModerateUserInput) (*entity.PublicUser, error) {
	user, err := srv.moderate(ctx, input, func(user *entity.User) entity.SecurityEventType {
		user.Status = entity.StatusBlocked

		return entity.EventUserBlocked
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Info("User blocked", "userID", input.TargetID, "adminID", input.AdminID)

	return user, nil
}

// ListSecurityLogs returns recent audit records, newest first.
func (srv *adminService) ListSecurityLogs(ctx context.Context, limit int) ([]*entity.SecurityLog, error) {
	if limit <= 0 {
		limit = defaultSecurityLogLimit
	}

	var logs []*entity.SecurityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSecurityLogRepository().List(ctx, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list security logs")
		}
		logs = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return logs, nil
}

// moderate applies a status mutation plus its audit entry in one transaction.
func (srv *adminService) moderate(
	ctx context.Context,
	input *usecase.ModerateUserInput,
	mutate func(*entity.User) entity.SecurityEventType,
) (*entity.PublicUser, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, input.TargetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("moderation failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		eventType := mutate(found)

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user status")
		}

		if err := repoFactory.NewSecurityLogRepository().Create(ctx, &entity.SecurityLog{
			UserID:    &found.ID,
			EventType: eventType,
			IPAddress: input.ClientIP,
			Details:   map[string]any{"admin_id": input.AdminID.String()},
		}); err != nil {
			return errors.WithStack(err)
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user.PublicView(), nil
}
