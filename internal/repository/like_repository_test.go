package repository

import (
	"fmt"
	"testing"

	"question_bank_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeQuestion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	user := createTestUser(t, db, "alice@example.com")
	question := createTestQuestion(t, db, user.ID)

	// 首次点赞
	liked, err := repo.Toggle(user.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	assert.True(t, liked)

	var q model.Question
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 1, q.LikeCount)

	has, err := repo.HasLiked(user.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	assert.True(t, has)

	// 再次点击取消
	liked, err = repo.Toggle(user.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 0, q.LikeCount)

	var rows int64
	require.NoError(t, db.Model(&model.Like{}).Where("target_id = ?", question.ID).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestToggleLikeCountMatchesRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	owner := createTestUser(t, db, "owner@example.com")
	question := createTestQuestion(t, db, owner.ID)

	// 多个用户各自点赞后，计数必须等于点赞行数
	for i := 0; i < 5; i++ {
		u := createTestUser(t, db, fmt.Sprintf("user%d@example.com", i))
		liked, err := repo.Toggle(u.ID, question.ID, model.LikeTargetQuestion)
		require.NoError(t, err)
		assert.True(t, liked)
	}

	var q model.Question
	var rows int64
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	require.NoError(t, db.Model(&model.Like{}).
		Where("target_id = ? AND target_type = ?", question.ID, model.LikeTargetQuestion).
		Count(&rows).Error)
	assert.Equal(t, 5, q.LikeCount)
	assert.Equal(t, int64(5), rows)

	// 其中一人取消
	var someone model.User
	require.NoError(t, db.First(&someone, "email = ?", "user0@example.com").Error)
	liked, err := repo.Toggle(someone.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	require.NoError(t, db.Model(&model.Like{}).
		Where("target_id = ? AND target_type = ?", question.ID, model.LikeTargetQuestion).
		Count(&rows).Error)
	assert.Equal(t, 4, q.LikeCount)
	assert.Equal(t, int64(4), rows)
}

func TestToggleLikeComment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	user := createTestUser(t, db, "bob@example.com")
	question := createTestQuestion(t, db, user.ID)

	comment := &model.Comment{
		QuestionID: question.ID,
		UserID:     user.ID,
		Content:    "不错的题目",
	}
	require.NoError(t, db.Create(comment).Error)

	liked, err := repo.Toggle(user.ID, comment.ID, model.LikeTargetComment)
	require.NoError(t, err)
	assert.True(t, liked)

	var c model.Comment
	require.NoError(t, db.First(&c, "id = ?", comment.ID).Error)
	assert.Equal(t, 1, c.LikeCount)

	// 评论和题目的点赞互不影响
	var q model.Question
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 0, q.LikeCount)
}

func TestToggleLikeDuplicateInsertNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	user := createTestUser(t, db, "alice@example.com")
	question := createTestQuestion(t, db, user.ID)

	liked, err := repo.Toggle(user.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	assert.True(t, liked)

	// 并发双击时第二条请求查无记录后才插入，命中唯一索引：
	// 按已点赞的空操作处理，不报错也不重复加计数
	require.NoError(t, repo.insert(user.ID, question.ID, model.LikeTargetQuestion))

	var q model.Question
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 1, q.LikeCount)

	var rows int64
	require.NoError(t, db.Model(&model.Like{}).
		Where("user_id = ? AND target_id = ? AND target_type = ?", user.ID, question.ID, model.LikeTargetQuestion).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	// 后续取消点赞不受影响
	liked, err = repo.Toggle(user.ID, question.ID, model.LikeTargetQuestion)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 0, q.LikeCount)
}
