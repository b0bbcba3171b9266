package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (usecase.AdminUsecase, *serviceFixtures) {
	t.Helper()

	fixtures := newServiceFixtures(t)
	svc := NewAdminService(fixtures.txManager, testLogger())

	return svc, fixtures
}

func TestAdminService_ApproveUser(t *testing.T) {
	svc, fixtures := createTestAdminService(t)
	admin := fixtures.seedUser("admin@example.com", "Sup3rSecret", entity.RoleAdmin, entity.StatusActive)
	pending := fixtures.seedUser("pending@example.com", "Sup3rSecret", entity.RoleCustomer, entity.StatusPending)

	approved, err := svc.ApproveUser(context.Background(), &usecase.ModerateUserInput{
		TargetID: pending.ID,
		AdminID:  admin.ID,
		ClientIP: "10.0.0.4",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, approved.Status)

	stored := findUserByID(t, fixtures, pending.ID)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, admin.ID, *stored.ApprovedBy)
	assert.NotNil(t, stored.ApprovedAt)

	logs := fixtures.securityLogs(10)
	require.NotEmpty(t, logs)
	assert.Equal(t, entity.EventUserApproved, logs[0].EventType)
	assert.Equal(t, admin.ID.String(), logs[0].Details["admin_id"])
}

func TestAdminService_BlockUser(t *testing.T) {
	svc, fixtures := createTestAdminService(t)
	admin := fixtures.seedUser("admin@example.com", "Sup3rSecret", entity.RoleAdmin, entity.StatusActive)
	active := fixtures.seedUser("victim@example.com", "Sup3rSecret", entity.RoleCustomer, entity.StatusActive)

	blocked, err := svc.BlockUser(context.Background(), &usecase.ModerateUserInput{
		TargetID: active.ID,
		AdminID:  admin.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, blocked.Status)

	logs := fixtures.securityLogs(10)
	require.NotEmpty(t, logs)
	assert.Equal(t, entity.EventUserBlocked, logs[0].EventType)
}

func TestAdminService_BlockUser_CanTargetAdmins(t *testing.T) {
	svc, fixtures := createTestAdminService(t)
	admin := fixtures.seedUser("admin@example.com", "Sup3rSecret", entity.RoleAdmin, entity.StatusActive)
	peer := fixtures.seedUser("peer-admin@example.com", "Sup3rSecret", entity.RoleAdmin, entity.StatusActive)

	blocked, err := svc.BlockUser(context.Background(), &usecase.ModerateUserInput{
		TargetID: peer.ID,
		AdminID:  admin.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, blocked.Status)
}

func TestAdminService_ModerateUnknownUser(t *testing.T) {
	svc, fixtures := createTestAdminService(t)
	admin := fixtures.seedUser("admin@example.com", "Sup3rSecret", entity.RoleAdmin, entity.StatusActive)

	_, err := svc.ApproveUser(context.Background(), &usecase.ModerateUserInput{
		TargetID: uuid.New(),
		AdminID:  admin.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = svc.BlockUser(context.Background(), &usecase.ModerateUserInput{
		TargetID: uuid.New(),
		AdminID:  admin.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_ListUsers_HidesCredentials(t *testing.T) {
	svc, fixtures := createTestAdminService(t)
	fixtures.seedUser("first@example.com", "Sup3rSecret", entity.RoleCustomer, entity.StatusPending)
	fixtures.seedUser("second@example.com", "Sup3rSecret", entity.RoleCustomer, entity.StatusActive)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "second@example.com", users[0].Email)
	assert.Equal(t, "first@example.com", users[1].Email)
}

func TestAdminService_ListSecurityLogs_Limit(t *testing.T) {
	svc, fixtures := createTestAdminService(t)
	admin := fixtures.seedUser("admin@example.com", "Sup3rSecret", entity.RoleAdmin, entity.StatusActive)

	for i := 0; i < 3; i++ {
		target := fixtures.seedUser(uuid.NewString()+"@example.com", "Sup3rSecret", entity.RoleCustomer, entity.StatusPending)
		_, err := svc.ApproveUser(context.Background(), &usecase.ModerateUserInput{
			TargetID: target.ID,
			AdminID:  admin.ID,
		})
		require.NoError(t, err)
	}

	logs, err := svc.ListSecurityLogs(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	// Zero falls back to the default page size.
	logs, err = svc.ListSecurityLogs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}
