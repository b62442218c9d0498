package repository

import (
	"fmt"
	"strings"
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试独立的内存库，cache=shared 保证事务内多连接看到同一数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		Email:    email,
		Username: strings.Split(email, "@")[0],
		Password: "hashed",
		Role:     model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, creatorID string) *model.Question {
	t.Helper()

	question := &model.Question{
		Type:       model.QuestionSingle,
		Title:      "测试题目",
		Content:    "1+1 等于几?",
		Answer:     model.JSONValue(`"A"`),
		Difficulty: model.DifficultyEasy,
		CreatedBy:  creatorID,
		IsPublic:   true,
		Status:     model.StatusPublished,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}
