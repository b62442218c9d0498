package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-that-is-long-enough-0000",
			ExpireTime: time.Hour,
		},
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		Email:    email,
		Username: strings.Split(email, "@")[0],
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, creatorID string, qType model.QuestionType, answer string) *model.Question {
	t.Helper()

	question := &model.Question{
		Type:       qType,
		Title:      "测试题目",
		Content:    "题干",
		Answer:     model.JSONValue(answer),
		Difficulty: model.DifficultyEasy,
		CreatedBy:  creatorID,
		IsPublic:   true,
		Status:     model.StatusPublished,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func newQuestionService(db *gorm.DB) *QuestionService {
	return NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewTagRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func newPracticeService(db *gorm.DB) *PracticeService {
	return NewPracticeService(
		repository.NewPracticeRepository(db),
		repository.NewQuestionRepository(db),
	)
}

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewLikeRepository(db),
	)
}
