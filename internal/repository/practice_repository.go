package repository

import (
	"question_bank_backend/internal/model"

	"gorm.io/gorm"
)

type PracticeRepository struct {
	DB *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) *PracticeRepository {
	return &PracticeRepository{DB: db}
}

// CreateRecord 写入练习记录并同步题目的答题计数
func (r *PracticeRepository) CreateRecord(record *model.PracticeRecord) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).Where("id = ?", record.QuestionID).
			Update("answer_count", gorm.Expr("answer_count + 1")).Error
	})
}

func (r *PracticeRepository) FindRecordsByUser(userID string) ([]model.PracticeRecord, error) {
	var records []model.PracticeRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Question").
		Find(&records).Error
	return records, err
}

func (r *PracticeRepository) HasFavorited(userID, questionID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Favorite{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

// CreateFavorite 收藏并同步题目的收藏计数
func (r *PracticeRepository) CreateFavorite(favorite *model.Favorite) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(favorite).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).Where("id = ?", favorite.QuestionID).
			Update("favorite_count", gorm.Expr("favorite_count + 1")).Error
	})
}

// DeleteFavorite 取消收藏，记录不存在时返回 gorm.ErrRecordNotFound
func (r *PracticeRepository) DeleteFavorite(userID, questionID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND question_id = ?", userID, questionID).Delete(&model.Favorite{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Question{}).Where("id = ?", questionID).
			Update("favorite_count", gorm.Expr("favorite_count - 1")).Error
	})
}

func (r *PracticeRepository) FindFavoritesByUser(userID string) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Question").
		Find(&favorites).Error
	return favorites, err
}
