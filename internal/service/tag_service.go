package service

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type TagService struct {
	TagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{TagRepo: tagRepo}
}

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Color string `json:"color" binding:"omitempty,max=20"`
}

// Create 按名称幂等：同名标签已存在时直接返回已有记录
func (s *TagService) Create(req CreateTagRequest) (*model.Tag, error) {
	existing, err := s.TagRepo.FindByName(req.Name)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	tag := &model.Tag{Name: req.Name, Color: req.Color}
	if err := s.TagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetAll() ([]model.Tag, error) {
	return s.TagRepo.FindAll()
}

func (s *TagService) GetByID(id string) (*model.Tag, error) {
	tag, err := s.TagRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTagNotFound
	}
	return tag, err
}
