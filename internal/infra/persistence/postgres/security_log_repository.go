package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// securityLogRepository implements the domain.SecurityLogRepository interface using GORM.
type securityLogRepository struct {
	db *gorm.DB
}

// NewSecurityLogRepository is the constructor for securityLogRepository.
func NewSecurityLogRepository(db *gorm.DB) repository.SecurityLogRepository {
	return &securityLogRepository{db: db}
}

// Create appends a new audit record.
func (repo *securityLogRepository) Create(ctx context.Context, log *entity.SecurityLog) error {
	logM := &model.SecurityLogModel{
		UserID:    log.UserID,
		EventType: string(log.EventType),
		IPAddress: log.IPAddress,
		Details:   datatypes.JSONMap(log.Details),
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create security log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// List retrieves audit records, newest first, capped at limit.
func (repo *securityLogRepository) List(ctx context.Context, limit int) ([]*entity.SecurityLog, error) {
	var models []model.SecurityLogModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list security logs")
	}

	logs := make([]*entity.SecurityLog, 0, len(models))
	for i := range models {
		logM := &models[i]
		logs = append(logs, &entity.SecurityLog{
			ID:        logM.ID,
			UserID:    logM.UserID,
			EventType: entity.SecurityEventType(logM.EventType),
			IPAddress: logM.IPAddress,
			Details:   map[string]any(logM.Details),
			CreatedAt: logM.CreatedAt,
		})
	}

	return logs, nil
}
