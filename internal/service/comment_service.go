package service

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type CommentService struct {
	CommentRepo  *repository.CommentRepository
	QuestionRepo *repository.QuestionRepository
	LikeRepo     *repository.LikeRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	questionRepo *repository.QuestionRepository,
	likeRepo *repository.LikeRepository,
) *CommentService {
	return &CommentService{
		CommentRepo:  commentRepo,
		QuestionRepo: questionRepo,
		LikeRepo:     likeRepo,
	}
}

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	QuestionID string  `json:"questionId" binding:"required,uuid"`
	Content    string  `json:"content" binding:"required,max=1000"`
	ParentID   *string `json:"parentId" binding:"omitempty,uuid"`
}

// UpdateCommentRequest 修改评论请求
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

func (s *CommentService) Create(userID string, req CreateCommentRequest) (*model.Comment, error) {
	exists, err := s.QuestionRepo.Exists(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrQuestionNotFound
	}

	if req.ParentID != nil {
		parent, err := s.GetByID(*req.ParentID)
		if err != nil {
			return nil, err
		}
		// 回复必须挂在同一题目下
		if parent.QuestionID != req.QuestionID {
			return nil, util.ErrParentMismatch
		}
	}

	comment := &model.Comment{
		QuestionID: req.QuestionID,
		UserID:     userID,
		Content:    req.Content,
		ParentID:   req.ParentID,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return s.GetByID(comment.ID)
}

func (s *CommentService) GetByID(id string) (*model.Comment, error) {
	comment, err := s.CommentRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCommentNotFound
	}
	return comment, err
}

// GetByQuestion 返回题目下的评论树：一级评论倒序，回复正序挂到父节点下
func (s *CommentService) GetByQuestion(questionID string) ([]*model.Comment, error) {
	exists, err := s.QuestionRepo.Exists(questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrQuestionNotFound
	}

	flat, err := s.CommentRepo.FindByQuestion(questionID)
	if err != nil {
		return nil, err
	}

	// id -> 节点索引，避免指针环
	nodes := make(map[string]*model.Comment, len(flat))
	for i := range flat {
		nodes[flat[i].ID] = &flat[i]
	}

	roots := []*model.Comment{}
	for i := range flat {
		c := &flat[i]
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}

	// 回复按时间正序（查询整体是倒序的）
	for _, root := range roots {
		for i, j := 0, len(root.Replies)-1; i < j; i, j = i+1, j-1 {
			root.Replies[i], root.Replies[j] = root.Replies[j], root.Replies[i]
		}
	}

	return roots, nil
}

func (s *CommentService) Update(id, userID string, userRole model.UserRole, req UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if comment.UserID != userID && userRole != model.RoleAdmin {
		return nil, util.ErrPermissionDenied
	}

	comment.Content = req.Content
	if err := s.CommentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(id, userID string, userRole model.UserRole) error {
	comment, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if comment.UserID != userID && userRole != model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	return s.CommentRepo.Delete(id)
}
