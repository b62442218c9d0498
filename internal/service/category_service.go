package service

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId" binding:"omitempty,uuid"`
	SortOrder   int     `json:"sortOrder"`
}

// UpdateCategoryRequest 更新分类请求，nil 字段表示不修改
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId" binding:"omitempty,uuid"`
	SortOrder   *int    `json:"sortOrder"`
}

func (s *CategoryService) Create(req CreateCategoryRequest) (*model.Category, error) {
	if req.ParentID != nil {
		if _, err := s.GetByID(*req.ParentID); err != nil {
			return nil, err
		}
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetByID(id string) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCategoryNotFound
	}
	return category, err
}

// GetTree 返回分类树，通过 id→节点 映射组装，父节点缺失的挂为根
func (s *CategoryService) GetTree() ([]*model.Category, error) {
	flat, err := s.CategoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*model.Category, len(flat))
	for i := range flat {
		nodes[flat[i].ID] = &flat[i]
	}

	roots := []*model.Category{}
	for i := range flat {
		c := &flat[i]
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		} else {
			roots = append(roots, c)
		}
	}

	return roots, nil
}

func (s *CategoryService) Update(id string, req UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		if err := s.checkNoCycle(id, *req.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = req.ParentID
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id string) error {
	category, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.CategoryRepo.Delete(id, category.ParentID)
}

// checkNoCycle 沿新父节点的祖先链向上走，出现自身即成环
func (s *CategoryService) checkNoCycle(id, newParentID string) error {
	if id == newParentID {
		return util.ErrCategoryCycle
	}

	current := newParentID
	for current != "" {
		parent, err := s.GetByID(current)
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			return nil
		}
		if *parent.ParentID == id {
			return util.ErrCategoryCycle
		}
		current = *parent.ParentID
	}
	return nil
}
