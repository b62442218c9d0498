package repository

import (
	"question_bank_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionFilter 题目列表的筛选条件，零值字段表示不做约束
type QuestionFilter struct {
	Type       model.QuestionType
	Difficulty model.QuestionDifficulty
	CategoryID string
	TagIDs     []string
	Search     string
	IsPublic   *bool
	CreatedBy  string
	SortOrder  string // ASC 或 DESC，按创建时间排序
}

func (r *QuestionRepository) FindWithPagination(offset, limit int, filter QuestionFilter) ([]model.Question, int64, error) {
	var questions []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if len(filter.TagIDs) > 0 {
		// 标签集合有交集即匹配
		sub := r.DB.Table("question_tags").Select("question_id").Where("tag_id IN ?", filter.TagIDs)
		query = query.Where("id IN (?)", sub)
	}

	if filter.Search != "" {
		query = query.Where("title LIKE ? OR content LIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}

	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if filter.SortOrder == "ASC" {
		order = "created_at ASC"
	}

	err := query.Order(order).Offset(offset).Limit(limit).
		Preload("Category").
		Preload("Tags").
		Preload("Creator").
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Category").
		Preload("Tags").
		Preload("Creator").
		First(&question, "id = ?", id).Error
	return &question, err
}

// Exists 只查主键，点赞等高频路径用
func (r *QuestionRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

// ReplaceTags 覆盖题目的标签集合
func (r *QuestionRepository) ReplaceTags(question *model.Question, tags []model.Tag) error {
	return r.DB.Model(question).Association("Tags").Replace(tags)
}

// Delete 删除题目及其全部子数据，在单个事务内完成
func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// 1. 找出所有评论，先清理评论上的点赞
		var commentIDs []string
		if err := tx.Model(&model.Comment{}).Where("question_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("target_type = ? AND target_id IN ?", model.LikeTargetComment, commentIDs).
				Delete(&model.Like{}).Error; err != nil {
				return err
			}
		}
		// 2. 删除评论（软删除）
		if err := tx.Where("question_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		// 3. 题目上的点赞、收藏、练习记录（物理删除）
		if err := tx.Where("target_type = ? AND target_id = ?", model.LikeTargetQuestion, id).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.PracticeRecord{}).Error; err != nil {
			return err
		}
		// 4. 题目本身
		return tx.Delete(&model.Question{}, "id = ?", id).Error
	})
}

func (r *QuestionRepository) IncrementViewCount(id string) error {
	return r.DB.Model(&model.Question{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).
		Error
}
