package repository

import (
	"question_bank_backend/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	DB *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(tag *model.Tag) error {
	return r.DB.Create(tag).Error
}

func (r *TagRepository) FindAll() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) FindByID(id string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.First(&tag, "id = ?", id).Error
	return &tag, err
}

func (r *TagRepository) FindByIDs(ids []string) ([]model.Tag, error) {
	var tags []model.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *TagRepository) FindByName(name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.First(&tag, "name = ?", name).Error
	return &tag, err
}
