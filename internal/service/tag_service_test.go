package service

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))

	tag, err := svc.Create(CreateTagRequest{Name: "Go", Color: "#00ADD8"})
	require.NoError(t, err)

	// 同名返回已有记录
	again, err := svc.Create(CreateTagRequest{Name: "Go", Color: "#FFFFFF"})
	require.NoError(t, err)
	assert.Equal(t, tag.ID, again.ID)
	assert.Equal(t, "#00ADD8", again.Color)

	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTagList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))

	for _, name := range []string{"MySQL", "Go", "Redis"} {
		_, err := svc.Create(CreateTagRequest{Name: name})
		require.NoError(t, err)
	}

	tags, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, tags, 3)
	// 按名称排序
	assert.Equal(t, "Go", tags[0].Name)
	assert.Equal(t, "MySQL", tags[1].Name)
	assert.Equal(t, "Redis", tags[2].Name)

	_, err = svc.GetByID(model.GenerateUUID())
	assert.ErrorIs(t, err, util.ErrTagNotFound)
}
