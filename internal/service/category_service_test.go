package service

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTree(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	root, err := svc.Create(CreateCategoryRequest{Name: "语言", SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.Create(CreateCategoryRequest{Name: "Go", ParentID: &root.ID, SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.Create(CreateCategoryRequest{Name: "Rust", ParentID: &root.ID, SortOrder: 2})
	require.NoError(t, err)
	_, err = svc.Create(CreateCategoryRequest{Name: "数据库", SortOrder: 2})
	require.NoError(t, err)

	tree, err := svc.GetTree()
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "语言", tree[0].Name)
	assert.Equal(t, "数据库", tree[1].Name)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "Go", tree[0].Children[0].Name)
	assert.Equal(t, "Rust", tree[0].Children[1].Name)
	assert.Empty(t, tree[1].Children)
}

func TestCategoryCreateMissingParent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	missing := model.GenerateUUID()
	_, err := svc.Create(CreateCategoryRequest{Name: "孤儿", ParentID: &missing})
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestCategoryCycleGuard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	a, err := svc.Create(CreateCategoryRequest{Name: "A"})
	require.NoError(t, err)
	b, err := svc.Create(CreateCategoryRequest{Name: "B", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := svc.Create(CreateCategoryRequest{Name: "C", ParentID: &b.ID})
	require.NoError(t, err)

	// 把 A 挂到自己的子孙下会成环
	_, err = svc.Update(a.ID, UpdateCategoryRequest{ParentID: &c.ID})
	assert.ErrorIs(t, err, util.ErrCategoryCycle)

	// 自己做自己的父节点
	_, err = svc.Update(a.ID, UpdateCategoryRequest{ParentID: &a.ID})
	assert.ErrorIs(t, err, util.ErrCategoryCycle)

	// 正常的移动不受影响
	_, err = svc.Update(c.ID, UpdateCategoryRequest{ParentID: &a.ID})
	require.NoError(t, err)
}

func TestCategoryDeleteReparents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	a, err := svc.Create(CreateCategoryRequest{Name: "A"})
	require.NoError(t, err)
	b, err := svc.Create(CreateCategoryRequest{Name: "B", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := svc.Create(CreateCategoryRequest{Name: "C", ParentID: &b.ID})
	require.NoError(t, err)

	// 挂在 B 下的题目
	user := createTestUser(t, db, "author@example.com", model.RoleUser)
	question := createTestQuestion(t, db, user.ID, model.QuestionSingle, `"A"`)
	require.NoError(t, db.Model(question).Update("category_id", b.ID).Error)

	require.NoError(t, svc.Delete(b.ID))

	// C 重新挂到 A 下
	reloaded, err := svc.GetByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ParentID)
	assert.Equal(t, a.ID, *reloaded.ParentID)

	// 题目的分类被置空
	var q model.Question
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Nil(t, q.CategoryID)

	_, err = svc.GetByID(b.ID)
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}
