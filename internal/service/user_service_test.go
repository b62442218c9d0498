package service

import (
	"fmt"
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := createTestUser(t, db, "alice@example.com", model.RoleUser)

	updated, err := svc.UpdateProfile(user.ID, UpdateProfileRequest{Username: "alice_v2"})
	require.NoError(t, err)
	assert.Equal(t, "alice_v2", updated.Username)
	// 未提供的字段不变
	assert.Equal(t, "alice@example.com", updated.Email)

	_, err = svc.GetByID(model.GenerateUUID())
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestAdminUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := createTestUser(t, db, "alice@example.com", model.RoleUser)

	disabled := true
	updated, err := svc.AdminUpdate(user.ID, AdminUpdateRequest{
		Role:     string(model.RoleAdmin),
		Disabled: &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.True(t, updated.Disabled)

	// Disabled 为 nil 时保持原状
	updated, err = svc.AdminUpdate(user.ID, AdminUpdateRequest{Username: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.True(t, updated.Disabled)
}

func TestGetUsersFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	createTestUser(t, db, "admin@example.com", model.RoleAdmin)
	for i := 0; i < 3; i++ {
		createTestUser(t, db, fmt.Sprintf("user%d@example.com", i), model.RoleUser)
	}

	users, total, err := svc.GetUsers(1, 10, repository.UserFilter{Role: string(model.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@example.com", users[0].Email)

	_, total, err = svc.GetUsers(1, 10, repository.UserFilter{Search: "user1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = svc.GetUsers(1, 2, repository.UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
