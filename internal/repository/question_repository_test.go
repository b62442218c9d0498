package repository

import (
	"fmt"
	"testing"
	"time"

	"question_bank_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	user := createTestUser(t, db, "author@example.com")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		q := &model.Question{
			Type:       model.QuestionSingle,
			Title:      fmt.Sprintf("题目 %02d", i),
			Content:    "内容",
			Answer:     model.JSONValue(`"A"`),
			Difficulty: model.DifficultyEasy,
			CreatedBy:  user.ID,
			IsPublic:   true,
		}
		q.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(q).Error)
	}

	questions, total, err := repo.FindWithPagination(0, 10, QuestionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, questions, 10)
	// 默认按创建时间倒序
	assert.Equal(t, "题目 24", questions[0].Title)

	questions, total, err = repo.FindWithPagination(20, 10, QuestionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, questions, 5)

	// 正序
	questions, _, err = repo.FindWithPagination(0, 10, QuestionFilter{SortOrder: "ASC"})
	require.NoError(t, err)
	assert.Equal(t, "题目 00", questions[0].Title)
}

func TestQuestionFilterConjunction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	user := createTestUser(t, db, "author@example.com")

	mk := func(qType model.QuestionType, difficulty model.QuestionDifficulty, title string) {
		require.NoError(t, db.Create(&model.Question{
			Type:       qType,
			Title:      title,
			Content:    "内容",
			Answer:     model.JSONValue(`"A"`),
			Difficulty: difficulty,
			CreatedBy:  user.ID,
			IsPublic:   true,
		}).Error)
	}

	mk(model.QuestionSingle, model.DifficultyEasy, "简单单选")
	mk(model.QuestionSingle, model.DifficultyHard, "困难单选")
	mk(model.QuestionJudge, model.DifficultyEasy, "简单判断")

	// 多个条件取交集
	questions, total, err := repo.FindWithPagination(0, 10, QuestionFilter{
		Type:       model.QuestionSingle,
		Difficulty: model.DifficultyEasy,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, questions, 1)
	assert.Equal(t, "简单单选", questions[0].Title)

	// 标题模糊搜索
	_, total, err = repo.FindWithPagination(0, 10, QuestionFilter{Search: "判断"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestQuestionFilterByTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	user := createTestUser(t, db, "author@example.com")

	golang := &model.Tag{Name: "Go"}
	mysql := &model.Tag{Name: "MySQL"}
	require.NoError(t, db.Create(golang).Error)
	require.NoError(t, db.Create(mysql).Error)

	q1 := &model.Question{
		Type: model.QuestionSingle, Title: "Go 题", Content: "内容",
		Answer: model.JSONValue(`"A"`), Difficulty: model.DifficultyEasy,
		CreatedBy: user.ID, Tags: []model.Tag{*golang},
	}
	q2 := &model.Question{
		Type: model.QuestionSingle, Title: "MySQL 题", Content: "内容",
		Answer: model.JSONValue(`"B"`), Difficulty: model.DifficultyEasy,
		CreatedBy: user.ID, Tags: []model.Tag{*mysql},
	}
	require.NoError(t, db.Create(q1).Error)
	require.NoError(t, db.Create(q2).Error)

	questions, total, err := repo.FindWithPagination(0, 10, QuestionFilter{TagIDs: []string{golang.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, questions, 1)
	assert.Equal(t, "Go 题", questions[0].Title)
}

func TestQuestionDeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)
	likeRepo := NewLikeRepository(db)
	practiceRepo := NewPracticeRepository(db)

	user := createTestUser(t, db, "author@example.com")
	question := createTestQuestion(t, db, user.ID)

	comment := &model.Comment{QuestionID: question.ID, UserID: user.ID, Content: "评论"}
	require.NoError(t, db.Create(comment).Error)

	_, err := likeRepo.Toggle(user.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	_, err = likeRepo.Toggle(user.ID, comment.ID, model.LikeTargetComment)
	require.NoError(t, err)

	require.NoError(t, practiceRepo.CreateFavorite(&model.Favorite{UserID: user.ID, QuestionID: question.ID}))
	require.NoError(t, practiceRepo.CreateRecord(&model.PracticeRecord{
		UserID:     user.ID,
		QuestionID: question.ID,
		UserAnswer: model.JSONValue(`"A"`),
		IsCorrect:  true,
	}))

	require.NoError(t, repo.Delete(question.ID))

	var count int64
	db.Model(&model.Question{}).Where("id = ?", question.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.Comment{}).Where("question_id = ?", question.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.Like{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.Favorite{}).Where("question_id = ?", question.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.PracticeRecord{}).Where("question_id = ?", question.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
