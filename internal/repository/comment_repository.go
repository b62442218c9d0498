package repository

import (
	"question_bank_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Preload("User").First(&comment, "id = ?", id).Error
	return &comment, err
}

// FindByQuestion 返回某题目下的全部评论（含回复），一级评论倒序
func (r *CommentRepository) FindByQuestion(questionID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("question_id = ?", questionID).
		Order("created_at DESC").
		Preload("User").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Update(comment *model.Comment) error {
	return r.DB.Save(comment).Error
}

// Delete 删除评论及其全部层级的回复和点赞行，同一事务内完成
func (r *CommentRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// 回复可以继续被回复，逐层收集子节点直到没有新增
		targetIDs := []string{id}
		frontier := []string{id}
		for len(frontier) > 0 {
			var childIDs []string
			if err := tx.Model(&model.Comment{}).Where("parent_id IN ?", frontier).Pluck("id", &childIDs).Error; err != nil {
				return err
			}
			targetIDs = append(targetIDs, childIDs...)
			frontier = childIDs
		}

		if err := tx.Where("target_type = ? AND target_id IN ?", model.LikeTargetComment, targetIDs).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		// 评论及回复（软删除）
		return tx.Where("id IN ?", targetIDs).Delete(&model.Comment{}).Error
	})
}
