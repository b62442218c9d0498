package repository

import (
	"question_bank_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

// Toggle 切换点赞状态，返回切换后的状态。
// 插入/删除点赞行和目标计数的增减在同一个事务里完成，
// 保证 like_count 恒等于点赞行数；并发的同键插入由唯一索引兜底。
func (r *LikeRepository) Toggle(userID, targetID string, targetType model.LikeTargetType) (bool, error) {
	var like model.Like
	result := r.DB.Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).First(&like)

	if result.Error == gorm.ErrRecordNotFound {
		// 点赞
		return true, r.insert(userID, targetID, targetType)
	} else if result.Error != nil {
		return false, result.Error
	}

	// 取消点赞（物理删除）
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&like).Error; err != nil {
			return err
		}
		return tx.Model(r.targetModel(targetType)).Where("id = ?", targetID).
			Update("like_count", gorm.Expr("like_count - 1")).Error
	})
	return false, err
}

// insert 写入点赞行并加计数。并发双击时第二条请求的插入会命中唯一索引，
// 此时按已点赞的空操作处理，不再加计数，保证 like_count 恒等于点赞行数。
func (r *LikeRepository) insert(userID, targetID string, targetType model.LikeTargetType) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Like{UserID: userID, TargetID: targetID, TargetType: targetType})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(r.targetModel(targetType)).Where("id = ?", targetID).
			Update("like_count", gorm.Expr("like_count + 1")).Error
	})
}

func (r *LikeRepository) HasLiked(userID, targetID string, targetType model.LikeTargetType) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Like{}).
		Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		Count(&count).Error
	return count > 0, err
}

func (r *LikeRepository) targetModel(targetType model.LikeTargetType) interface{} {
	if targetType == model.LikeTargetComment {
		return &model.Comment{}
	}
	return &model.Question{}
}
