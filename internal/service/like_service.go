package service

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type LikeService struct {
	LikeRepo     *repository.LikeRepository
	QuestionRepo *repository.QuestionRepository
	CommentRepo  *repository.CommentRepository
}

func NewLikeService(
	likeRepo *repository.LikeRepository,
	questionRepo *repository.QuestionRepository,
	commentRepo *repository.CommentRepository,
) *LikeService {
	return &LikeService{
		LikeRepo:     likeRepo,
		QuestionRepo: questionRepo,
		CommentRepo:  commentRepo,
	}
}

// ToggleLikeRequest 点赞/取消点赞请求
type ToggleLikeRequest struct {
	TargetID   string               `json:"targetId" binding:"required,uuid"`
	TargetType model.LikeTargetType `json:"targetType" binding:"required,oneof=question comment"`
}

// Toggle 切换点赞状态。目标不存在时报 NotFound。
func (s *LikeService) Toggle(userID string, req ToggleLikeRequest) (bool, error) {
	if err := s.checkTargetExists(req.TargetID, req.TargetType); err != nil {
		return false, err
	}
	return s.LikeRepo.Toggle(userID, req.TargetID, req.TargetType)
}

func (s *LikeService) GetStatus(userID, targetID string, targetType model.LikeTargetType) (bool, error) {
	return s.LikeRepo.HasLiked(userID, targetID, targetType)
}

func (s *LikeService) checkTargetExists(targetID string, targetType model.LikeTargetType) error {
	if targetType == model.LikeTargetComment {
		if _, err := s.CommentRepo.FindByID(targetID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return util.ErrCommentNotFound
			}
			return err
		}
		return nil
	}

	exists, err := s.QuestionRepo.Exists(targetID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrQuestionNotFound
	}
	return nil
}
