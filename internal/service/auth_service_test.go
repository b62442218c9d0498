package service

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	resp, err := svc.Register("alice@example.com", "alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, model.RoleUser, resp.User.Role)

	// 口令以散列形式存储
	var stored model.User
	require.NoError(t, db.First(&stored, "email = ?", "alice@example.com").Error)
	assert.NotEqual(t, "password123", stored.Password)

	// 令牌可以被解析回来
	claims, err := util.ParseJWT(resp.AccessToken, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	resp, err = svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	_, err := svc.Register("alice@example.com", "alice", "password123")
	require.NoError(t, err)

	// 邮箱重复
	_, err = svc.Register("alice@example.com", "alice2", "password123")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	// 用户名重复
	_, err = svc.Register("alice2@example.com", "alice", "password123")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginDisabledUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig())

	resp, err := svc.Register("alice@example.com", "alice", "password123")
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", resp.User.ID).Update("disabled", true).Error)

	_, err = svc.Login("alice@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}
